package request

type CreateReservationRequest struct {
	ShowtimeID string `json:"showtime_id" validate:"required,uuid4"`
	Quantity   int    `json:"quantity" validate:"required,min=1,max=20"`
}

// UpdateReservationRequest either grows the group by add_quantity seats
// or moves one reservation to a specific seat. Exactly one of the two
// fields must be set; the service rejects mixed requests.
type UpdateReservationRequest struct {
	AddQuantity   *int    `json:"add_quantity,omitempty" validate:"omitempty,min=1,max=20"`
	ReservationID *string `json:"reservation_id,omitempty" validate:"omitempty,uuid4"`
	SeatID        *string `json:"seat_id,omitempty" validate:"omitempty,uuid4"`
}
