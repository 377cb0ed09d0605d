package response

import "cinema-reservations/internal/data/entity"

// SeatMapResponse groups a showtime's seats by row label, each row
// listing its seats in ascending number order.
type SeatMapResponse struct {
	ShowtimeID string                    `json:"showtime_id"`
	Rows       map[string][]SeatResponse `json:"rows"`
}

// SeatsToMapResponse expects seats already ordered by row then number;
// the per-row slices preserve that order.
func SeatsToMapResponse(showtimeID string, seats []*entity.Seat) SeatMapResponse {
	resp := SeatMapResponse{
		ShowtimeID: showtimeID,
		Rows:       make(map[string][]SeatResponse),
	}
	for _, seat := range seats {
		resp.Rows[seat.Row] = append(resp.Rows[seat.Row], SeatToResponse(seat))
	}
	return resp
}
