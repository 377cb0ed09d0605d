package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-reservations/internal/data/entity"
	"cinema-reservations/internal/data/repository"
	"cinema-reservations/internal/dto/request"
	"cinema-reservations/internal/dto/response"
	"cinema-reservations/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error)
	GetAllMovies(ctx context.Context, req *request.PaginatedRequest, titleFilter *string) (*response.PaginatedResponse[response.MovieResponse], error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error

	// Categories and actors
	CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	GetAllCategories(ctx context.Context) ([]response.CategoryResponse, error)
	UpdateCategory(ctx context.Context, categoryID string, req *request.CategoryRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, categoryID string) error
	CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
	GetAllActors(ctx context.Context, req *request.PaginatedRequest) ([]response.ActorResponse, error)
	UpdateActor(ctx context.Context, actorID string, req *request.ActorRequest) (*response.ActorResponse, error)
	DeleteActor(ctx context.Context, actorID string) error
	AttachCategory(ctx context.Context, movieID, categoryID string) error
	DetachCategory(ctx context.Context, movieID, categoryID string) error
	AttachActor(ctx context.Context, movieID, actorID string) error
	DetachActor(ctx context.Context, movieID, actorID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("invalid release date %s: %w", req.ReleaseDate, err)
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:             req.Title,
		Description:       req.Description,
		PosterURL:         req.PosterURL,
		ReleaseDate:       releaseDate,
		DurationInMinutes: req.DurationInMinutes,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	for _, categoryIDStr := range req.CategoryIDs {
		categoryID, err := uuid.Parse(categoryIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid category ID format %s: %w", categoryIDStr, err)
		}
		if err := s.repo.Category.AttachToMovie(ctx, movie.ID, categoryID); err != nil {
			return nil, fmt.Errorf("attach category %s: %w", categoryIDStr, err)
		}
	}

	for _, actorIDStr := range req.ActorIDs {
		actorID, err := uuid.Parse(actorIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid actor ID format %s: %w", actorIDStr, err)
		}
		if err := s.repo.Actor.AttachToMovie(ctx, movie.ID, actorID); err != nil {
			return nil, fmt.Errorf("attach actor %s: %w", actorIDStr, err)
		}
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	return s.GetMovieByID(ctx, movie.ID.String())
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
	}

	categories, err := s.repo.Category.FindByMovieID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find movie categories: %w", err)
	}

	actors, err := s.repo.Actor.FindByMovieID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find movie actors: %w", err)
	}

	resp := response.MovieToDetailResponse(movie, categories, actors)
	return &resp, nil
}

func (s *movieService) GetAllMovies(ctx context.Context, req *request.PaginatedRequest, titleFilter *string) (*response.PaginatedResponse[response.MovieResponse], error) {
	movies, err := s.repo.Movie.FindAll(ctx, req.Limit(), req.Offset(), titleFilter)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	total, err := s.repo.Movie.CountAll(ctx, titleFilter)
	if err != nil {
		return nil, fmt.Errorf("count movies: %w", err)
	}

	data := make([]response.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		data = append(data, response.MovieToResponse(movie))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = req.Description
	}
	if req.PosterURL != nil {
		movie.PosterURL = req.PosterURL
	}
	if req.ReleaseDate != nil {
		releaseDate, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("invalid release date %s: %w", *req.ReleaseDate, err)
		}
		movie.ReleaseDate = releaseDate
	}
	if req.DurationInMinutes != nil {
		movie.DurationInMinutes = *req.DurationInMinutes
	}
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
	}

	if err := s.repo.Movie.Delete(ctx, movieUUID); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}

func (s *movieService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	now := time.Now()
	category := &entity.MovieCategory{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *movieService) GetAllCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	data := make([]response.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		data = append(data, response.CategoryToResponse(category))
	}
	return data, nil
}

func (s *movieService) UpdateCategory(ctx context.Context, categoryID string, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	categoryUUID, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID format %s: %w", categoryID, err)
	}

	category, err := s.repo.Category.FindByID(ctx, categoryUUID)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
	}

	category.Name = req.Name
	category.UpdatedAt = time.Now()

	if err := s.repo.Category.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *movieService) DeleteCategory(ctx context.Context, categoryID string) error {
	categoryUUID, err := uuid.Parse(categoryID)
	if err != nil {
		return fmt.Errorf("invalid category ID format %s: %w", categoryID, err)
	}

	category, err := s.repo.Category.FindByID(ctx, categoryUUID)
	if err != nil {
		return fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
	}

	if err := s.repo.Category.Delete(ctx, categoryUUID); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.Info("Category deleted", zap.String("category_id", categoryID))
	return nil
}

func (s *movieService) CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	now := time.Now()
	actor := &entity.Actor{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("invalid birth date %s: %w", *req.BirthDate, err)
		}
		actor.BirthDate = &birthDate
	}

	if err := s.repo.Actor.Create(ctx, actor); err != nil {
		return nil, fmt.Errorf("create actor: %w", err)
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *movieService) GetAllActors(ctx context.Context, req *request.PaginatedRequest) ([]response.ActorResponse, error) {
	actors, err := s.repo.Actor.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list actors: %w", err)
	}

	data := make([]response.ActorResponse, 0, len(actors))
	for _, actor := range actors {
		data = append(data, response.ActorToResponse(actor))
	}
	return data, nil
}

func (s *movieService) UpdateActor(ctx context.Context, actorID string, req *request.ActorRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("invalid actor ID format %s: %w", actorID, err)
	}

	actor, err := s.repo.Actor.FindByID(ctx, actorUUID)
	if err != nil {
		return nil, fmt.Errorf("find actor: %w", err)
	}
	if actor == nil {
		return nil, fmt.Errorf("actor %s: %w", actorID, ErrNotFound)
	}

	actor.Name = req.Name
	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("invalid birth date %s: %w", *req.BirthDate, err)
		}
		actor.BirthDate = &birthDate
	}
	actor.UpdatedAt = time.Now()

	if err := s.repo.Actor.Update(ctx, actor); err != nil {
		return nil, fmt.Errorf("update actor: %w", err)
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *movieService) DeleteActor(ctx context.Context, actorID string) error {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid actor ID format %s: %w", actorID, err)
	}

	actor, err := s.repo.Actor.FindByID(ctx, actorUUID)
	if err != nil {
		return fmt.Errorf("find actor: %w", err)
	}
	if actor == nil {
		return fmt.Errorf("actor %s: %w", actorID, ErrNotFound)
	}

	if err := s.repo.Actor.Delete(ctx, actorUUID); err != nil {
		return fmt.Errorf("delete actor: %w", err)
	}

	s.log.Info("Actor deleted", zap.String("actor_id", actorID))
	return nil
}

func (s *movieService) AttachCategory(ctx context.Context, movieID, categoryID string) error {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}
	categoryUUID, err := uuid.Parse(categoryID)
	if err != nil {
		return fmt.Errorf("invalid category ID format %s: %w", categoryID, err)
	}

	category, err := s.repo.Category.FindByID(ctx, categoryUUID)
	if err != nil {
		return fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
	}

	return s.repo.Category.AttachToMovie(ctx, movieUUID, categoryUUID)
}

func (s *movieService) DetachCategory(ctx context.Context, movieID, categoryID string) error {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}
	categoryUUID, err := uuid.Parse(categoryID)
	if err != nil {
		return fmt.Errorf("invalid category ID format %s: %w", categoryID, err)
	}

	return s.repo.Category.DetachFromMovie(ctx, movieUUID, categoryUUID)
}

func (s *movieService) AttachActor(ctx context.Context, movieID, actorID string) error {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid actor ID format %s: %w", actorID, err)
	}

	actor, err := s.repo.Actor.FindByID(ctx, actorUUID)
	if err != nil {
		return fmt.Errorf("find actor: %w", err)
	}
	if actor == nil {
		return fmt.Errorf("actor %s: %w", actorID, ErrNotFound)
	}

	return s.repo.Actor.AttachToMovie(ctx, movieUUID, actorUUID)
}

func (s *movieService) DetachActor(ctx context.Context, movieID, actorID string) error {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("invalid actor ID format %s: %w", actorID, err)
	}

	return s.repo.Actor.DetachFromMovie(ctx, movieUUID, actorUUID)
}
