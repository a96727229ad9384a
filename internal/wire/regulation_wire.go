package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"
)

func wireRegulation(r chi.Router, regulationHandler *adaptor.RegulationHandler, log *zap.Logger) {
	// ==================== ADMIN ROUTES ====================
	// Pricing rules are managed by back-office staff
	r.Route("/api/admin/regulations", func(r chi.Router) {
		r.Use(middleware.Identity(log))

		// GET /api/admin/regulations/room-types/{id} - Current rule for a room type
		r.Get("/room-types/{id}", regulationHandler.GetRoomRegulation)

		// PUT /api/admin/regulations/room-types/{id} - Create or replace the rule
		r.Put("/room-types/{id}", regulationHandler.UpsertRoomRegulation)

		// GET /api/admin/regulations/customer-types/{type} - Current rate for a customer type
		r.Get("/customer-types/{type}", regulationHandler.GetCustomerTypeRegulation)

		// PUT /api/admin/regulations/customer-types/{type} - Create or replace the rate
		r.Put("/customer-types/{type}", regulationHandler.UpsertCustomerTypeRegulation)
	})
}
