package request

type ShowtimeRequest struct {
	MovieID  string `json:"movie_id" validate:"required,uuid4"`
	RoomID   string `json:"room_id" validate:"required,uuid4"`
	ShowDate string `json:"show_date" validate:"required"`
}

type ShowtimeUpdateRequest struct {
	ShowDate *string `json:"show_date,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
