package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type ReservationResponse struct {
	ID             string                   `json:"id"`
	CustomerID     string                   `json:"customer_id"`
	ReceptionistID string                   `json:"receptionist_id"`
	RoomID         string                   `json:"room_id"`
	Checkin        time.Time                `json:"checkin"`
	Checkout       time.Time                `json:"checkout"`
	OccupantCount  int                      `json:"occupant_count"`
	Deposit        float64                  `json:"deposit"`
	Status         entity.ReservationStatus `json:"status"`
	CreatedAt      time.Time                `json:"created_at"`
}

type RentalResponse struct {
	ID              string     `json:"id"`
	CustomerID      string     `json:"customer_id"`
	ReceptionistID  string     `json:"receptionist_id"`
	RoomID          string     `json:"room_id"`
	ReservationID   *string    `json:"reservation_id,omitempty"`
	Checkin         time.Time  `json:"checkin"`
	PlannedCheckout time.Time  `json:"planned_checkout"`
	Checkout        *time.Time `json:"checkout,omitempty"`
	OccupantCount   int        `json:"occupant_count"`
	Deposit         float64    `json:"deposit"`
	IsPaid          bool       `json:"is_paid"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ReceiptResponse struct {
	ID             string    `json:"id"`
	ReceptionistID string    `json:"receptionist_id"`
	RentalID       string    `json:"rental_id"`
	TotalPrice     float64   `json:"total_price"`
	AmountDue      float64   `json:"amount_due"`
	CreatedAt      time.Time `json:"created_at"`
}

type QuoteResponse struct {
	NightlyRate float64 `json:"nightly_rate"`
	Surcharge   float64 `json:"surcharge"`
	Nights      int     `json:"nights"`
	Subtotal    float64 `json:"subtotal"`
	Deposit     float64 `json:"deposit"`
	Total       float64 `json:"total"`
}

// Helper converters

func ReservationToResponse(r *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:             r.ID.String(),
		CustomerID:     r.CustomerID.String(),
		ReceptionistID: r.ReceptionistID.String(),
		RoomID:         r.RoomID.String(),
		Checkin:        r.Checkin,
		Checkout:       r.Checkout,
		OccupantCount:  r.OccupantCount,
		Deposit:        r.Deposit,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
	}
}

func RentalToResponse(r *entity.RoomRental) RentalResponse {
	resp := RentalResponse{
		ID:              r.ID.String(),
		CustomerID:      r.CustomerID.String(),
		ReceptionistID:  r.ReceptionistID.String(),
		RoomID:          r.RoomID.String(),
		Checkin:         r.Checkin,
		PlannedCheckout: r.PlannedCheckout,
		Checkout:        r.Checkout,
		OccupantCount:   r.OccupantCount,
		Deposit:         r.Deposit,
		IsPaid:          r.IsPaid,
		CreatedAt:       r.CreatedAt,
	}
	if r.ReservationID != nil {
		id := r.ReservationID.String()
		resp.ReservationID = &id
	}
	return resp
}

func ReceiptToResponse(r *entity.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:             r.ID.String(),
		ReceptionistID: r.ReceptionistID.String(),
		RentalID:       r.RentalID.String(),
		TotalPrice:     r.TotalPrice,
		AmountDue:      r.AmountDue,
		CreatedAt:      r.CreatedAt,
	}
}
