package response

import (
	"time"

	"cinema-reservations/internal/data/entity"
)

type MovieResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       *string   `json:"description,omitempty"`
	PosterURL         *string   `json:"poster_url,omitempty"`
	ReleaseDate       string    `json:"release_date"`
	DurationInMinutes int       `json:"duration_in_minutes"`
	CreatedAt         time.Time `json:"created_at"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ActorResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BirthDate *string `json:"birth_date,omitempty"`
}

type MovieDetailResponse struct {
	MovieResponse
	Categories []CategoryResponse `json:"categories"`
	Actors     []ActorResponse    `json:"actors"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:                movie.ID.String(),
		Title:             movie.Title,
		Description:       movie.Description,
		PosterURL:         movie.PosterURL,
		ReleaseDate:       movie.ReleaseDate.Format("2006-01-02"),
		DurationInMinutes: movie.DurationInMinutes,
		CreatedAt:         movie.CreatedAt,
	}
}

func CategoryToResponse(category *entity.MovieCategory) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID.String(),
		Name: category.Name,
	}
}

func ActorToResponse(actor *entity.Actor) ActorResponse {
	resp := ActorResponse{
		ID:   actor.ID.String(),
		Name: actor.Name,
	}
	if actor.BirthDate != nil {
		birthDate := actor.BirthDate.Format("2006-01-02")
		resp.BirthDate = &birthDate
	}
	return resp
}

func MovieToDetailResponse(movie *entity.Movie, categories []*entity.MovieCategory, actors []*entity.Actor) MovieDetailResponse {
	resp := MovieDetailResponse{
		MovieResponse: MovieToResponse(movie),
		Categories:    make([]CategoryResponse, 0, len(categories)),
		Actors:        make([]ActorResponse, 0, len(actors)),
	}
	for _, category := range categories {
		resp.Categories = append(resp.Categories, CategoryToResponse(category))
	}
	for _, actor := range actors {
		resp.Actors = append(resp.Actors, ActorToResponse(actor))
	}
	return resp
}
