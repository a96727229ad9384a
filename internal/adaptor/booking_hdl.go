package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"
)

type BookingHandler struct {
	service usecase.BookingService
	pricing usecase.PricingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, pricing usecase.PricingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		pricing: pricing,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateReservation handles POST /api/reservations (protected)
func (h *BookingHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	receptionistID, ok := utils.GetReceptionistIDFromContext(r.Context())
	if !ok {
		utils.ResponseBadRequest(w, "Receptionist identity required", nil)
		return
	}

	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), receptionistID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// CancelReservation handles DELETE /api/reservations/{id} (protected)
func (h *BookingHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	if err := h.service.CancelReservation(r.Context(), reservationID); err != nil {
		h.handleServiceError(w, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CheckIn handles POST /api/reservations/{id}/checkin (protected)
func (h *BookingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	receptionistID, ok := utils.GetReceptionistIDFromContext(r.Context())
	if !ok {
		utils.ResponseBadRequest(w, "Receptionist identity required", nil)
		return
	}

	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rental, err := h.service.CheckIn(r.Context(), receptionistID, reservationID, &req)
	if err != nil {
		h.handleServiceError(w, err, "check in")
		return
	}

	utils.ResponseCreated(w, "success", rental)
}

// WalkInRental handles POST /api/rentals (protected)
func (h *BookingHandler) WalkInRental(w http.ResponseWriter, r *http.Request) {
	receptionistID, ok := utils.GetReceptionistIDFromContext(r.Context())
	if !ok {
		utils.ResponseBadRequest(w, "Receptionist identity required", nil)
		return
	}

	var req request.WalkInRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rental, err := h.service.WalkInRental(r.Context(), receptionistID, &req)
	if err != nil {
		h.handleServiceError(w, err, "walk-in rental")
		return
	}

	utils.ResponseCreated(w, "success", rental)
}

// CheckOut handles POST /api/rentals/{id}/checkout (protected)
func (h *BookingHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	receptionistID, ok := utils.GetReceptionistIDFromContext(r.Context())
	if !ok {
		utils.ResponseBadRequest(w, "Receptionist identity required", nil)
		return
	}

	rentalID := chi.URLParam(r, "id")
	if rentalID == "" {
		utils.ResponseBadRequest(w, "Rental ID is required", nil)
		return
	}

	var req request.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	receipt, err := h.service.CheckOut(r.Context(), receptionistID, rentalID, &req)
	if err != nil {
		h.handleServiceError(w, err, "check out")
		return
	}

	utils.ResponseSuccess(w, "success", receipt)
}

// Quote handles POST /api/quote (public)
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req request.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	roomTypeID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room type ID", nil)
		return
	}

	quote, err := h.pricing.Quote(r.Context(), roomTypeID, entity.CustomerType(req.CustomerType),
		req.Checkin, req.Checkout, req.OccupantCount)
	if err != nil {
		h.handleServiceError(w, err, "quote")
		return
	}

	utils.ResponseSuccess(w, "success", response.QuoteResponse{
		NightlyRate: quote.NightlyRate,
		Surcharge:   quote.Surcharge,
		Nights:      quote.Nights,
		Subtotal:    quote.Subtotal,
		Deposit:     quote.Deposit,
		Total:       quote.Total,
	})
}

// handleServiceError maps domain errors to HTTP responses
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrConflict):
		h.log.Warn(operation+" failed - interval conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, entity.ErrAlreadyCheckedIn), errors.Is(err, entity.ErrAlreadyPaid):
		h.log.Warn(operation+" failed - state transition rejected", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, entity.ErrInvalidInterval), errors.Is(err, entity.ErrValidation):
		h.log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrUnknownRegulation):
		h.log.Warn(operation+" failed - missing regulation", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error())

	case errors.Is(err, entity.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrBusy):
		h.log.Warn(operation+" failed - room busy", zap.Error(err))
		utils.ResponseUnavailable(w, err.Error())

	default:
		h.log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
