package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	ReceptionistIDKey contextKey = "receptionist_id"
)

// GetReceptionistIDFromContext returns the authenticated receptionist
// identity injected by the identity middleware. The id originates from
// the external session provider and is trusted as-is.
func GetReceptionistIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	val := ctx.Value(ReceptionistIDKey)
	if val == nil {
		return uuid.Nil, false
	}

	idStr, ok := val.(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func SetReceptionistContext(ctx context.Context, receptionistID uuid.UUID) context.Context {
	return context.WithValue(ctx, ReceptionistIDKey, receptionistID.String())
}
