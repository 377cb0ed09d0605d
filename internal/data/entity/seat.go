package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Seat struct {
	BaseSimple
	ShowtimeID uuid.UUID `db:"showtime_id"`
	Row        string    `db:"seat_row"`
	Number     int       `db:"seat_number"`
	IsReserved bool      `db:"is_reserved"`
}

// Label returns the display identifier, e.g. "A1".
func (s *Seat) Label() string {
	return s.Row + strconv.Itoa(s.Number)
}

// GenerateSeats builds the seat inventory for a new showtime. Seats are
// split evenly across the given row labels; when the capacity is not
// divisible by the row count the remainder goes to the last row, so the
// generated count always equals the room capacity.
func GenerateSeats(showtimeID uuid.UUID, capacity int, rows []string, now time.Time) []*Seat {
	if capacity <= 0 || len(rows) == 0 {
		return nil
	}

	perRow := capacity / len(rows)
	remainder := capacity % len(rows)

	seats := make([]*Seat, 0, capacity)
	for i, row := range rows {
		count := perRow
		if i == len(rows)-1 {
			count += remainder
		}
		for number := 1; number <= count; number++ {
			seats = append(seats, &Seat{
				BaseSimple: BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				ShowtimeID: showtimeID,
				Row:        row,
				Number:     number,
				IsReserved: false,
			})
		}
	}

	return seats
}
