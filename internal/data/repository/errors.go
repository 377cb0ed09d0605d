// Package repository defines sentinel error values shared across the
// data layer so that services and handlers can distinguish booking
// failures from plain storage errors.
package repository

import (
	"errors"
	"fmt"
)

// ErrNoSeatsAvailable is returned when a showtime has no free seat left.
var ErrNoSeatsAvailable = errors.New("no seats available for this showtime")

// ErrSeatAlreadyReserved is returned when a claim targets a seat whose
// is_reserved flag was already set by someone else.
var ErrSeatAlreadyReserved = errors.New("seat is already reserved")

// ErrNothingToRelease is returned when a cancellation finds no
// reservations under the target group.
var ErrNothingToRelease = errors.New("no seats to release")

// NotEnoughSeatsError reports how many seats were actually free when a
// request asked for more than that. The count travels up to the API
// response so the caller can retry with a smaller quantity.
type NotEnoughSeatsError struct {
	Available int
}

func (e *NotEnoughSeatsError) Error() string {
	return fmt.Sprintf("only %d seats available", e.Available)
}
