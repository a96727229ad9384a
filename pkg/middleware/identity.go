package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotel-booking/pkg/utils"
)

// Identity reads the receptionist identity resolved by the upstream
// session provider. Authentication itself happens outside this service;
// the id is trusted once present and well-formed.
func Identity(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("X-Receptionist-ID")
			if header == "" {
				utils.ResponseBadRequest(w, "Missing X-Receptionist-ID header", nil)
				return
			}

			receptionistID, err := uuid.Parse(header)
			if err != nil {
				logger.Warn("Malformed receptionist id",
					zap.String("value", header),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseBadRequest(w, "Invalid X-Receptionist-ID header", nil)
				return
			}

			ctx := utils.SetReceptionistContext(r.Context(), receptionistID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
