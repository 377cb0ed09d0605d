package response

import (
	"time"

	"cinema-reservations/internal/data/entity"
)

type CinemaResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	TotalSeats int       `json:"total_seats"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type RoomResponse struct {
	ID         string `json:"id"`
	CinemaID   string `json:"cinema_id"`
	RoomNumber int    `json:"room_number"`
	Capacity   int    `json:"capacity"`
}

type CinemaDetailResponse struct {
	CinemaResponse
	Rooms []RoomResponse `json:"rooms"`
}

// Helper converters
func CinemaToResponse(cinema *entity.Cinema) CinemaResponse {
	return CinemaResponse{
		ID:         cinema.ID.String(),
		Name:       cinema.Name,
		Address:    cinema.Address,
		TotalSeats: cinema.TotalSeats,
		IsActive:   cinema.IsActive,
		CreatedAt:  cinema.CreatedAt,
	}
}

func RoomToResponse(room *entity.ScreeningRoom) RoomResponse {
	return RoomResponse{
		ID:         room.ID.String(),
		CinemaID:   room.CinemaID.String(),
		RoomNumber: room.RoomNumber,
		Capacity:   room.Capacity,
	}
}

func CinemaToDetailResponse(cinema *entity.Cinema, rooms []*entity.ScreeningRoom) CinemaDetailResponse {
	resp := CinemaDetailResponse{
		CinemaResponse: CinemaToResponse(cinema),
		Rooms:          make([]RoomResponse, 0, len(rooms)),
	}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, RoomToResponse(room))
	}
	return resp
}
