package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoomRental is a stay in progress or completed. ReservationID is set
// iff the rental was produced by checking in a reservation; walk-in
// rentals have no reservation link.
//
// PlannedCheckout bounds the occupied interval while the stay is
// active. Checkout stays nil until settlement and then records the
// realized end of the stay.
type RoomRental struct {
	Base
	ReceptionistID  uuid.UUID  `db:"receptionist_id"`
	CustomerID      uuid.UUID  `db:"customer_id"`
	RoomID          uuid.UUID  `db:"room_id"`
	ReservationID   *uuid.UUID `db:"reservation_id"`
	Checkin         time.Time  `db:"checkin_date"`
	PlannedCheckout time.Time  `db:"planned_checkout_date"`
	Checkout        *time.Time `db:"checkout_date"`
	OccupantCount   int        `db:"occupant_count"`
	Deposit         float64    `db:"deposit"`
	IsPaid          bool       `db:"is_paid"`
}

func (r *RoomRental) IsWalkIn() bool {
	return r.ReservationID == nil
}
