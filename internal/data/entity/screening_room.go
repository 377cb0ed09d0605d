package entity

import "github.com/google/uuid"

type ScreeningRoom struct {
	Base
	CinemaID   uuid.UUID `db:"cinema_id"`
	RoomNumber int       `db:"room_number"`
	Capacity   int       `db:"capacity"`
}
