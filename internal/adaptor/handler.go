package adaptor

import (
	"go.uber.org/zap"

	"hotel-booking/internal/usecase"
)

type Handler struct {
	Booking    *BookingHandler
	Room       *RoomHandler
	Regulation *RegulationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:    NewBookingHandler(service.Booking, service.Pricing, log),
		Room:       NewRoomHandler(service.Room, log),
		Regulation: NewRegulationHandler(service.Regulation, log),
	}
}
