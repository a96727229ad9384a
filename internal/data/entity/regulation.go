package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// RoomRegulation is the administrator-set pricing and capacity rule for
// a room type. Exactly one active regulation exists per room type.
type RoomRegulation struct {
	RoomTypeID    uuid.UUID `db:"room_type_id"`
	AdminID       uuid.UUID `db:"admin_id"`
	RoomQuantity  int       `db:"room_quantity"`
	Capacity      int       `db:"capacity"`
	Price         float64   `db:"price"`
	SurchargeRate float64   `db:"surcharge_rate"`
	DepositRate   float64   `db:"deposit_rate"`
	Distance      int       `db:"distance"`
}

func (r *RoomRegulation) Validate() error {
	if r.Price < 0 {
		return fmt.Errorf("price must not be negative, got %.2f", r.Price)
	}
	if r.SurchargeRate < 0 {
		return fmt.Errorf("surcharge rate must not be negative, got %.2f", r.SurchargeRate)
	}
	if r.DepositRate < 0 || r.DepositRate > 1 {
		return fmt.Errorf("deposit rate must be within [0, 1], got %.2f", r.DepositRate)
	}
	if r.Capacity < 1 {
		return fmt.Errorf("capacity must be at least 1, got %d", r.Capacity)
	}
	return nil
}

// CustomerTypeRegulation holds the rate multiplier applied to stays of
// customers of a given type.
type CustomerTypeRegulation struct {
	CustomerType CustomerType `db:"customer_type"`
	AdminID      uuid.UUID    `db:"admin_id"`
	Rate         float64      `db:"rate"`
}

func (r *CustomerTypeRegulation) Validate() error {
	if !r.CustomerType.Valid() {
		return fmt.Errorf("unknown customer type %q", r.CustomerType)
	}
	if r.Rate < 0 {
		return fmt.Errorf("rate must not be negative, got %.2f", r.Rate)
	}
	return nil
}
