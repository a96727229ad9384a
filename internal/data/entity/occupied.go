package entity

import (
	"time"

	"github.com/google/uuid"
)

// OccupiedInterval is the ledger's view of one occupied room interval,
// used to warm the in-memory interval index at startup.
type OccupiedInterval struct {
	RoomID  uuid.UUID
	OwnerID uuid.UUID
	Start   time.Time
	End     time.Time
}
