package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConflictWindow is the minimum spacing between two active showtimes
// in the same screening room.
const ConflictWindow = 3 * time.Hour

type Showtime struct {
	Base
	MovieID  uuid.UUID `db:"movie_id"`
	RoomID   uuid.UUID `db:"room_id"`
	ShowDate time.Time `db:"show_date"`
	IsActive bool      `db:"is_active"`
}
