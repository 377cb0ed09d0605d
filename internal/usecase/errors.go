package usecase

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors the handlers translate into HTTP statuses.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("operation not allowed for this user")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicate          = errors.New("resource already exists")
	ErrPastShowDate       = errors.New("show date is in the past")
	ErrCinemaInactive     = errors.New("cinema is not active")
	ErrShowtimeInactive   = errors.New("showtime is not active")
	ErrInvalidUpdate      = errors.New("exactly one of add_quantity or seat reassignment must be provided")
	ErrMaxSeatsExceeded   = errors.New("reservation exceeds the per-booking seat limit")
	ErrSeatWrongShowtime  = errors.New("seat does not belong to the reservation's showtime")
)

// ValidationError carries the per-field messages from request
// validation so handlers can return them in the error payload.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// ScheduleConflictError reports a showtime that would land within the
// conflict window of an existing one, with the earliest time that
// would not.
type ScheduleConflictError struct {
	RoomID    string
	Suggested time.Time
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("room %s already has a showtime within 3 hours, next free slot at %s",
		e.RoomID, e.Suggested.Format(time.RFC3339))
}

// CapacityExceededError reports a room configuration that would push
// the cinema past its seat total.
type CapacityExceededError struct {
	CinemaTotal int
	Requested   int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("room capacities would total %d, exceeding the cinema's %d seats",
		e.Requested, e.CinemaTotal)
}
