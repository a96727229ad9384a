package request

import "time"

type CreateReservationRequest struct {
	CustomerID    string    `json:"customer_id" validate:"required,uuid4"`
	RoomID        string    `json:"room_id" validate:"required,uuid4"`
	Checkin       time.Time `json:"checkin" validate:"required"`
	Checkout      time.Time `json:"checkout" validate:"required,gtfield=Checkin"`
	OccupantCount int       `json:"occupant_count" validate:"required,min=1"`
}

type CheckInRequest struct {
	ActualCheckin time.Time `json:"actual_checkin" validate:"required"`
}

type WalkInRentalRequest struct {
	CustomerID    string    `json:"customer_id" validate:"required,uuid4"`
	RoomID        string    `json:"room_id" validate:"required,uuid4"`
	Checkin       time.Time `json:"checkin" validate:"required"`
	Checkout      time.Time `json:"checkout" validate:"required,gtfield=Checkin"`
	OccupantCount int       `json:"occupant_count" validate:"required,min=1"`
}

type CheckOutRequest struct {
	ActualCheckout time.Time `json:"actual_checkout" validate:"required"`
}

type QuoteRequest struct {
	RoomTypeID    string    `json:"room_type_id" validate:"required,uuid4"`
	CustomerType  string    `json:"customer_type" validate:"required,oneof=DOMESTIC FOREIGN"`
	Checkin       time.Time `json:"checkin" validate:"required"`
	Checkout      time.Time `json:"checkout" validate:"required,gtfield=Checkin"`
	OccupantCount int       `json:"occupant_count" validate:"required,min=1"`
}
