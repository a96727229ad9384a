package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, log *zap.Logger) {
	// ==================== PROTECTED ROUTES (require identity) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))

		// POST /api/reservations - Reserve a room for a future stay
		r.Post("/api/reservations", bookingHandler.CreateReservation)

		// DELETE /api/reservations/{id} - Cancel a pending reservation
		r.Delete("/api/reservations/{id}", bookingHandler.CancelReservation)

		// POST /api/reservations/{id}/checkin - Convert a reservation into a rental
		r.Post("/api/reservations/{id}/checkin", bookingHandler.CheckIn)

		// POST /api/rentals - Walk-in rental without a reservation
		r.Post("/api/rentals", bookingHandler.WalkInRental)

		// POST /api/rentals/{id}/checkout - Settle a rental and issue the receipt
		r.Post("/api/rentals/{id}/checkout", bookingHandler.CheckOut)
	})

	// ==================== PUBLIC ROUTES ====================
	// POST /api/quote - Price a prospective stay without booking it
	r.Post("/api/quote", bookingHandler.Quote)
}
