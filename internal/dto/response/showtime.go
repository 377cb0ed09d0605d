package response

import (
	"time"

	"cinema-reservations/internal/data/entity"
)

type ShowtimeResponse struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movie_id"`
	RoomID    string    `json:"room_id"`
	ShowDate  time.Time `json:"show_date"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type ShowtimeAvailabilityResponse struct {
	ShowtimeResponse
	TotalSeats     int64 `json:"total_seats"`
	AvailableSeats int64 `json:"available_seats"`
	IsFull         bool  `json:"is_full"`
}

// Helper converters
func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:        showtime.ID.String(),
		MovieID:   showtime.MovieID.String(),
		RoomID:    showtime.RoomID.String(),
		ShowDate:  showtime.ShowDate,
		IsActive:  showtime.IsActive,
		CreatedAt: showtime.CreatedAt,
	}
}

func ShowtimeToAvailabilityResponse(showtime *entity.Showtime, total, available int64) ShowtimeAvailabilityResponse {
	return ShowtimeAvailabilityResponse{
		ShowtimeResponse: ShowtimeToResponse(showtime),
		TotalSeats:       total,
		AvailableSeats:   available,
		IsFull:           available <= 0,
	}
}
