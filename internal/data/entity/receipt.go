package entity

import (
	"github.com/google/uuid"
)

// Receipt is the immutable settlement record of a rental. Exactly one
// receipt exists per rental, created at checkout.
type Receipt struct {
	BaseSimple
	ReceptionistID uuid.UUID `db:"receptionist_id"`
	RentalID       uuid.UUID `db:"rental_id"`
	TotalPrice     float64   `db:"total_price"`
	// AmountDue is the total minus the deposit collected up front.
	AmountDue float64 `db:"amount_due"`
}
