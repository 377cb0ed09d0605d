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

type ShowtimeService interface {
	// CreateShowtime schedules a movie in a room and generates the full
	// seat inventory from the room capacity. Rejects past dates,
	// inactive cinemas and slots within the conflict window of another
	// active showtime in the same room.
	CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeAvailabilityResponse, error)
	GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeAvailabilityResponse, error)
	GetAllShowtimes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ShowtimeAvailabilityResponse], error)
	GetShowtimesByMovie(ctx context.Context, movieID string) ([]response.ShowtimeAvailabilityResponse, error)
	UpdateShowtime(ctx context.Context, showtimeID string, req *request.ShowtimeUpdateRequest) (*response.ShowtimeResponse, error)
	DeactivateShowtime(ctx context.Context, showtimeID string) error
	// GetSeatMap returns the showtime's seats grouped by row.
	GetSeatMap(ctx context.Context, showtimeID string) (*response.SeatMapResponse, error)
}

type showtimeService struct {
	repo     *repository.Repository
	log      *zap.Logger
	seatRows []string
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger, seatRows []string) ShowtimeService {
	return &showtimeService{
		repo:     repo,
		log:      log.With(zap.String("service", "showtime")),
		seatRows: seatRows,
	}
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeAvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", req.MovieID, err)
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	showDate, err := time.Parse(time.RFC3339, req.ShowDate)
	if err != nil {
		return nil, fmt.Errorf("invalid show date %s: %w", req.ShowDate, err)
	}
	if showDate.Before(time.Now()) {
		return nil, ErrPastShowDate
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", req.MovieID, ErrNotFound)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", req.RoomID, ErrNotFound)
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, room.CinemaID)
	if err != nil {
		return nil, fmt.Errorf("find cinema: %w", err)
	}
	if cinema == nil || !cinema.IsActive {
		return nil, ErrCinemaInactive
	}

	if err := s.checkConflict(ctx, roomID, showDate, uuid.Nil); err != nil {
		return nil, err
	}

	now := time.Now()
	showtime := &entity.Showtime{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:  movieID,
		RoomID:   roomID,
		ShowDate: showDate,
		IsActive: true,
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	seats := entity.GenerateSeats(showtime.ID, room.Capacity, s.seatRows, now)
	if err := s.repo.Seat.CreateBatch(ctx, seats); err != nil {
		return nil, fmt.Errorf("generate seats: %w", err)
	}

	s.log.Info("Showtime created",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("movie_id", req.MovieID),
		zap.String("room_id", req.RoomID),
		zap.Int("seats", len(seats)),
	)

	resp := response.ShowtimeToAvailabilityResponse(showtime, int64(len(seats)), int64(len(seats)))
	return &resp, nil
}

// checkConflict rejects a slot when the room already has an active
// showtime within the conflict window, suggesting the earliest time
// after the requested one that clears it.
func (s *showtimeService) checkConflict(ctx context.Context, roomID uuid.UUID, showDate time.Time, excludeID uuid.UUID) error {
	from := showDate.Add(-entity.ConflictWindow)
	to := showDate.Add(entity.ConflictWindow)

	count, err := s.repo.Showtime.CountActiveInWindow(ctx, roomID, from, to, excludeID)
	if err != nil {
		return fmt.Errorf("check showtime conflicts: %w", err)
	}
	if count > 0 {
		return &ScheduleConflictError{
			RoomID:    roomID.String(),
			Suggested: showDate.Add(entity.ConflictWindow),
		}
	}
	return nil
}

func (s *showtimeService) GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeAvailabilityResponse, error) {
	showtimeUUID, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID format %s: %w", showtimeID, err)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeUUID)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s: %w", showtimeID, ErrNotFound)
	}

	resp, err := s.withAvailability(ctx, showtime)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *showtimeService) withAvailability(ctx context.Context, showtime *entity.Showtime) (*response.ShowtimeAvailabilityResponse, error) {
	total, err := s.repo.Seat.CountByShowtimeID(ctx, showtime.ID)
	if err != nil {
		return nil, fmt.Errorf("count seats: %w", err)
	}
	free, err := s.repo.Seat.CountFreeByShowtimeID(ctx, showtime.ID)
	if err != nil {
		return nil, fmt.Errorf("count free seats: %w", err)
	}

	resp := response.ShowtimeToAvailabilityResponse(showtime, total, free)
	return &resp, nil
}

func (s *showtimeService) GetAllShowtimes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ShowtimeAvailabilityResponse], error) {
	showtimes, err := s.repo.Showtime.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list showtimes: %w", err)
	}

	total, err := s.repo.Showtime.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count showtimes: %w", err)
	}

	data := make([]response.ShowtimeAvailabilityResponse, 0, len(showtimes))
	for _, showtime := range showtimes {
		resp, err := s.withAvailability(ctx, showtime)
		if err != nil {
			return nil, err
		}
		data = append(data, *resp)
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *showtimeService) GetShowtimesByMovie(ctx context.Context, movieID string) ([]response.ShowtimeAvailabilityResponse, error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	showtimes, err := s.repo.Showtime.FindByMovieID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find showtimes by movie: %w", err)
	}

	data := make([]response.ShowtimeAvailabilityResponse, 0, len(showtimes))
	for _, showtime := range showtimes {
		resp, err := s.withAvailability(ctx, showtime)
		if err != nil {
			return nil, err
		}
		data = append(data, *resp)
	}
	return data, nil
}

func (s *showtimeService) UpdateShowtime(ctx context.Context, showtimeID string, req *request.ShowtimeUpdateRequest) (*response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	showtimeUUID, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID format %s: %w", showtimeID, err)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeUUID)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s: %w", showtimeID, ErrNotFound)
	}

	if req.ShowDate != nil {
		showDate, err := time.Parse(time.RFC3339, *req.ShowDate)
		if err != nil {
			return nil, fmt.Errorf("invalid show date %s: %w", *req.ShowDate, err)
		}
		if showDate.Before(time.Now()) {
			return nil, ErrPastShowDate
		}
		if err := s.checkConflict(ctx, showtime.RoomID, showDate, showtimeUUID); err != nil {
			return nil, err
		}
		showtime.ShowDate = showDate
	}
	if req.IsActive != nil {
		showtime.IsActive = *req.IsActive
	}
	showtime.UpdatedAt = time.Now()

	if err := s.repo.Showtime.Update(ctx, showtime); err != nil {
		return nil, fmt.Errorf("update showtime: %w", err)
	}

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) DeactivateShowtime(ctx context.Context, showtimeID string) error {
	showtimeUUID, err := uuid.Parse(showtimeID)
	if err != nil {
		return fmt.Errorf("invalid showtime ID format %s: %w", showtimeID, err)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeUUID)
	if err != nil {
		return fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return fmt.Errorf("showtime %s: %w", showtimeID, ErrNotFound)
	}

	if err := s.repo.Showtime.Deactivate(ctx, showtimeUUID); err != nil {
		return fmt.Errorf("deactivate showtime: %w", err)
	}

	s.log.Info("Showtime deactivated", zap.String("showtime_id", showtimeID))
	return nil
}

func (s *showtimeService) GetSeatMap(ctx context.Context, showtimeID string) (*response.SeatMapResponse, error) {
	showtimeUUID, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID format %s: %w", showtimeID, err)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeUUID)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s: %w", showtimeID, ErrNotFound)
	}

	seats, err := s.repo.Seat.FindByShowtimeID(ctx, showtimeUUID)
	if err != nil {
		return nil, fmt.Errorf("find seats: %w", err)
	}

	resp := response.SeatsToMapResponse(showtimeID, seats)
	return &resp, nil
}
