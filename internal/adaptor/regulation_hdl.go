package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"
)

type RegulationHandler struct {
	service usecase.RegulationService
	log     *zap.Logger
}

func NewRegulationHandler(service usecase.RegulationService, log *zap.Logger) *RegulationHandler {
	return &RegulationHandler{
		service: service,
		log:     log.With(zap.String("handler", "regulation")),
	}
}

// GetRoomRegulation handles GET /api/admin/regulations/room-types/{id}
func (h *RegulationHandler) GetRoomRegulation(w http.ResponseWriter, r *http.Request) {
	roomTypeID := chi.URLParam(r, "id")
	if roomTypeID == "" {
		utils.ResponseBadRequest(w, "Room type ID is required", nil)
		return
	}

	regulation, err := h.service.GetRoomRegulation(r.Context(), roomTypeID)
	if err != nil {
		h.handleServiceError(w, err, "get room regulation")
		return
	}

	utils.ResponseSuccess(w, "success", regulation)
}

// UpsertRoomRegulation handles PUT /api/admin/regulations/room-types/{id}
func (h *RegulationHandler) UpsertRoomRegulation(w http.ResponseWriter, r *http.Request) {
	roomTypeID := chi.URLParam(r, "id")
	if roomTypeID == "" {
		utils.ResponseBadRequest(w, "Room type ID is required", nil)
		return
	}

	var req request.UpsertRoomRegulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	regulation, err := h.service.UpsertRoomRegulation(r.Context(), roomTypeID, &req)
	if err != nil {
		h.handleServiceError(w, err, "upsert room regulation")
		return
	}

	utils.ResponseSuccess(w, "success", regulation)
}

// GetCustomerTypeRegulation handles GET /api/admin/regulations/customer-types/{type}
func (h *RegulationHandler) GetCustomerTypeRegulation(w http.ResponseWriter, r *http.Request) {
	customerType := chi.URLParam(r, "type")
	if customerType == "" {
		utils.ResponseBadRequest(w, "Customer type is required", nil)
		return
	}

	regulation, err := h.service.GetCustomerTypeRegulation(r.Context(), customerType)
	if err != nil {
		h.handleServiceError(w, err, "get customer type regulation")
		return
	}

	utils.ResponseSuccess(w, "success", regulation)
}

// UpsertCustomerTypeRegulation handles PUT /api/admin/regulations/customer-types/{type}
func (h *RegulationHandler) UpsertCustomerTypeRegulation(w http.ResponseWriter, r *http.Request) {
	customerType := chi.URLParam(r, "type")
	if customerType == "" {
		utils.ResponseBadRequest(w, "Customer type is required", nil)
		return
	}

	var req request.UpsertCustomerTypeRegulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	regulation, err := h.service.UpsertCustomerTypeRegulation(r.Context(), customerType, &req)
	if err != nil {
		h.handleServiceError(w, err, "upsert customer type regulation")
		return
	}

	utils.ResponseSuccess(w, "success", regulation)
}

func (h *RegulationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrUnknownRegulation):
		h.log.Warn(operation+" failed - no regulation", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
