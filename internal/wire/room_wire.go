package wire

import (
	"github.com/go-chi/chi/v5"

	"hotel-booking/internal/adaptor"
)

func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/rooms - List rooms (paginated)
	r.Get("/api/rooms", roomHandler.GetRooms)

	// GET /api/rooms/{id}/availability - Check a room for a given interval
	r.Get("/api/rooms/{id}/availability", roomHandler.GetAvailability)
}
