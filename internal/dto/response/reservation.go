package response

import (
	"time"

	"cinema-reservations/internal/data/entity"
	"cinema-reservations/internal/data/repository"
)

type SeatResponse struct {
	ID         string `json:"id"`
	Row        string `json:"row"`
	Number     int    `json:"number"`
	Label      string `json:"label"`
	IsReserved bool   `json:"is_reserved"`
}

type ReservationResponse struct {
	ID         string       `json:"id"`
	Seat       SeatResponse `json:"seat"`
	ReservedAt time.Time    `json:"reserved_at"`
}

type ReservationGroupResponse struct {
	ID           string                `json:"id"`
	UserID       string                `json:"user_id"`
	ShowtimeID   string                `json:"showtime_id"`
	Reservations []ReservationResponse `json:"reservations"`
	CreatedAt    time.Time             `json:"created_at"`
}

// Helper converters
func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:         seat.ID.String(),
		Row:        seat.Row,
		Number:     seat.Number,
		Label:      seat.Label(),
		IsReserved: seat.IsReserved,
	}
}

func GroupToResponse(group *entity.ReservationGroup, reserved []*repository.ReservedSeat) ReservationGroupResponse {
	resp := ReservationGroupResponse{
		ID:           group.ID.String(),
		UserID:       group.UserID.String(),
		ShowtimeID:   group.ShowtimeID.String(),
		Reservations: make([]ReservationResponse, 0, len(reserved)),
		CreatedAt:    group.CreatedAt,
	}
	for _, rs := range reserved {
		resp.Reservations = append(resp.Reservations, ReservationResponse{
			ID:         rs.Reservation.ID.String(),
			Seat:       SeatToResponse(rs.Seat),
			ReservedAt: rs.Reservation.ReservedAt,
		})
	}
	return resp
}
