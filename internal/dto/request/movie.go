package request

type MovieRequest struct {
	Title             string  `json:"title" validate:"required,min=1,max=200"`
	Description       *string `json:"description,omitempty"`
	PosterURL         *string `json:"poster_url,omitempty" validate:"omitempty,url"`
	ReleaseDate       string  `json:"release_date" validate:"required,datetime=2006-01-02"`
	DurationInMinutes int     `json:"duration_in_minutes" validate:"required,gt=0"`
	CategoryIDs       []string `json:"category_ids,omitempty" validate:"omitempty,dive,uuid4"`
	ActorIDs          []string `json:"actor_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

type MovieUpdateRequest struct {
	Title             *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description       *string `json:"description,omitempty"`
	PosterURL         *string `json:"poster_url,omitempty" validate:"omitempty,url"`
	ReleaseDate       *string `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DurationInMinutes *int    `json:"duration_in_minutes,omitempty" validate:"omitempty,gt=0"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type ActorRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	BirthDate *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
