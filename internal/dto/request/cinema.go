package request

type CinemaRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Address    string `json:"address" validate:"required,min=1,max=200"`
	TotalSeats int    `json:"total_seats" validate:"required,gt=0"`
}

type CinemaUpdateRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address    *string `json:"address,omitempty" validate:"omitempty,min=1,max=200"`
	TotalSeats *int    `json:"total_seats,omitempty" validate:"omitempty,gt=0"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

type RoomRequest struct {
	RoomNumber int `json:"room_number" validate:"required,gt=0"`
	Capacity   int `json:"capacity" validate:"required,gt=0"`
}

type RoomUpdateRequest struct {
	RoomNumber *int `json:"room_number,omitempty" validate:"omitempty,gt=0"`
	Capacity   *int `json:"capacity,omitempty" validate:"omitempty,gt=0"`
}
