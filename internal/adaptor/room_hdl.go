package adaptor

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// GetRooms handles GET /api/rooms (public)
func (h *RoomHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), request.DefaultPage),
		PerPage: utils.ParseInt(query.Get("per_page"), request.DefaultPerPage),
	}

	rooms, err := h.service.List(r.Context(), req)
	if err != nil {
		h.log.Error("get rooms failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetAvailability handles GET /api/rooms/{id}/availability (public)
func (h *RoomHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	query := r.URL.Query()
	checkin, err := time.Parse(time.RFC3339, query.Get("checkin"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid checkin, expected RFC 3339 timestamp", nil)
		return
	}
	checkout, err := time.Parse(time.RFC3339, query.Get("checkout"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid checkout, expected RFC 3339 timestamp", nil)
		return
	}

	availability, err := h.service.Availability(r.Context(), roomID, checkin, checkout)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidInterval), errors.Is(err, entity.ErrValidation):
			utils.ResponseBadRequest(w, err.Error(), nil)
		case errors.Is(err, entity.ErrNotFound):
			utils.ResponseNotFound(w, err.Error())
		default:
			h.log.Error("get availability failed", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}
