package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReservationGroup aggregates one user's seats for one showtime. It is
// created lazily on the first booking for the (user, showtime) pair and
// deleted wholesale on cancellation.
type ReservationGroup struct {
	BaseNoDelete
	UserID     uuid.UUID `db:"user_id"`
	ShowtimeID uuid.UUID `db:"showtime_id"`
}

type Reservation struct {
	BaseSimple
	GroupID    uuid.UUID `db:"group_id"`
	SeatID     uuid.UUID `db:"seat_id"`
	ReservedAt time.Time `db:"reserved_at"`
}
