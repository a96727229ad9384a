package entity

import (
	"github.com/google/uuid"
)

type RoomType struct {
	Base
	Name string `db:"name"`
}

type Room struct {
	Base
	Name       string    `db:"name"`
	Image      string    `db:"image"`
	RoomTypeID uuid.UUID `db:"room_type_id"`
}
