package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type RoomResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Image      string    `json:"image,omitempty"`
	RoomTypeID string    `json:"room_type_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type AvailabilityResponse struct {
	RoomID    string    `json:"room_id"`
	Checkin   time.Time `json:"checkin"`
	Checkout  time.Time `json:"checkout"`
	Available bool      `json:"available"`
}

func RoomToResponse(r *entity.Room) RoomResponse {
	return RoomResponse{
		ID:         r.ID.String(),
		Name:       r.Name,
		Image:      r.Image,
		RoomTypeID: r.RoomTypeID.String(),
		CreatedAt:  r.CreatedAt,
	}
}
