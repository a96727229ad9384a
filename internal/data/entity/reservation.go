package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusCheckedIn ReservationStatus = "checked_in"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation is a future claim on a room. It either converts into a
// RoomRental at check-in or is cancelled; both are terminal.
type Reservation struct {
	Base
	CustomerID     uuid.UUID         `db:"customer_id"`
	ReceptionistID uuid.UUID         `db:"receptionist_id"`
	RoomID         uuid.UUID         `db:"room_id"`
	Checkin        time.Time         `db:"checkin_date"`
	Checkout       time.Time         `db:"checkout_date"`
	OccupantCount  int               `db:"occupant_count"`
	Deposit        float64           `db:"deposit"`
	Status         ReservationStatus `db:"status"`
}
