package request

type UpsertRoomRegulationRequest struct {
	AdminID       string  `json:"admin_id" validate:"required,uuid4"`
	RoomQuantity  int     `json:"room_quantity" validate:"required,min=1"`
	Capacity      int     `json:"capacity" validate:"required,min=1"`
	Price         float64 `json:"price" validate:"min=0"`
	SurchargeRate float64 `json:"surcharge_rate" validate:"min=0"`
	DepositRate   float64 `json:"deposit_rate" validate:"min=0,max=1"`
	Distance      int     `json:"distance" validate:"min=0"`
}

type UpsertCustomerTypeRegulationRequest struct {
	AdminID string  `json:"admin_id" validate:"required,uuid4"`
	Rate    float64 `json:"rate" validate:"min=0"`
}
