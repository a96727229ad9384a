package entity

type CustomerType string

const (
	CustomerTypeDomestic CustomerType = "DOMESTIC"
	CustomerTypeForeign  CustomerType = "FOREIGN"
)

func (t CustomerType) Valid() bool {
	return t == CustomerTypeDomestic || t == CustomerTypeForeign
}

type Customer struct {
	Base
	Name           string       `db:"name"`
	Identification string       `db:"identification"`
	CustomerType   CustomerType `db:"customer_type"`
}
