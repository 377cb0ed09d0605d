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

type CinemaService interface {
	CreateCinema(ctx context.Context, req *request.CinemaRequest) (*response.CinemaResponse, error)
	GetCinemaByID(ctx context.Context, cinemaID string) (*response.CinemaDetailResponse, error)
	GetAllCinemas(ctx context.Context, req *request.PaginatedRequest, activeOnly bool) (*response.PaginatedResponse[response.CinemaResponse], error)
	UpdateCinema(ctx context.Context, cinemaID string, req *request.CinemaUpdateRequest) (*response.CinemaResponse, error)
	DeactivateCinema(ctx context.Context, cinemaID string) error

	// Rooms. Creating or resizing a room is rejected when the combined
	// capacity of the cinema's rooms would exceed its seat total.
	CreateRoom(ctx context.Context, cinemaID string, req *request.RoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type cinemaService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCinemaService(repo *repository.Repository, log *zap.Logger) CinemaService {
	return &cinemaService{
		repo: repo,
		log:  log.With(zap.String("service", "cinema")),
	}
}

func (s *cinemaService) CreateCinema(ctx context.Context, req *request.CinemaRequest) (*response.CinemaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	existing, err := s.repo.Cinema.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check cinema name uniqueness: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("cinema %q: %w", req.Name, ErrDuplicate)
	}

	now := time.Now()
	cinema := &entity.Cinema{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       req.Name,
		Address:    req.Address,
		TotalSeats: req.TotalSeats,
		IsActive:   true,
	}

	if err := s.repo.Cinema.Create(ctx, cinema); err != nil {
		return nil, fmt.Errorf("create cinema: %w", err)
	}

	s.log.Info("Cinema created",
		zap.String("cinema_id", cinema.ID.String()),
		zap.String("name", cinema.Name),
	)

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) GetCinemaByID(ctx context.Context, cinemaID string) (*response.CinemaDetailResponse, error) {
	cinemaUUID, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, fmt.Errorf("invalid cinema ID format %s: %w", cinemaID, err)
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, cinemaUUID)
	if err != nil {
		return nil, fmt.Errorf("find cinema: %w", err)
	}
	if cinema == nil {
		return nil, fmt.Errorf("cinema %s: %w", cinemaID, ErrNotFound)
	}

	rooms, err := s.repo.Room.FindByCinemaID(ctx, cinemaUUID)
	if err != nil {
		return nil, fmt.Errorf("find cinema rooms: %w", err)
	}

	resp := response.CinemaToDetailResponse(cinema, rooms)
	return &resp, nil
}

func (s *cinemaService) GetAllCinemas(ctx context.Context, req *request.PaginatedRequest, activeOnly bool) (*response.PaginatedResponse[response.CinemaResponse], error) {
	cinemas, err := s.repo.Cinema.FindAll(ctx, req.Limit(), req.Offset(), activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list cinemas: %w", err)
	}

	total, err := s.repo.Cinema.CountAll(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("count cinemas: %w", err)
	}

	data := make([]response.CinemaResponse, 0, len(cinemas))
	for _, cinema := range cinemas {
		data = append(data, response.CinemaToResponse(cinema))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *cinemaService) UpdateCinema(ctx context.Context, cinemaID string, req *request.CinemaUpdateRequest) (*response.CinemaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	cinemaUUID, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, fmt.Errorf("invalid cinema ID format %s: %w", cinemaID, err)
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, cinemaUUID)
	if err != nil {
		return nil, fmt.Errorf("find cinema: %w", err)
	}
	if cinema == nil {
		return nil, fmt.Errorf("cinema %s: %w", cinemaID, ErrNotFound)
	}

	if req.Name != nil && *req.Name != cinema.Name {
		existing, err := s.repo.Cinema.FindByName(ctx, *req.Name)
		if err != nil {
			return nil, fmt.Errorf("check cinema name uniqueness: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("cinema %q: %w", *req.Name, ErrDuplicate)
		}
		cinema.Name = *req.Name
	}
	if req.Address != nil {
		cinema.Address = *req.Address
	}
	if req.TotalSeats != nil {
		// Shrinking below the rooms' combined capacity would break the
		// capacity invariant.
		used, err := s.repo.Room.SumCapacityByCinemaID(ctx, cinemaUUID, uuid.Nil)
		if err != nil {
			return nil, fmt.Errorf("sum room capacities: %w", err)
		}
		if used > *req.TotalSeats {
			return nil, &CapacityExceededError{CinemaTotal: *req.TotalSeats, Requested: used}
		}
		cinema.TotalSeats = *req.TotalSeats
	}
	if req.IsActive != nil {
		cinema.IsActive = *req.IsActive
	}
	cinema.UpdatedAt = time.Now()

	if err := s.repo.Cinema.Update(ctx, cinema); err != nil {
		return nil, fmt.Errorf("update cinema: %w", err)
	}

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) DeactivateCinema(ctx context.Context, cinemaID string) error {
	cinemaUUID, err := uuid.Parse(cinemaID)
	if err != nil {
		return fmt.Errorf("invalid cinema ID format %s: %w", cinemaID, err)
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, cinemaUUID)
	if err != nil {
		return fmt.Errorf("find cinema: %w", err)
	}
	if cinema == nil {
		return fmt.Errorf("cinema %s: %w", cinemaID, ErrNotFound)
	}

	if err := s.repo.Cinema.Deactivate(ctx, cinemaUUID); err != nil {
		return fmt.Errorf("deactivate cinema: %w", err)
	}

	s.log.Info("Cinema deactivated", zap.String("cinema_id", cinemaID))
	return nil
}

func (s *cinemaService) CreateRoom(ctx context.Context, cinemaID string, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	cinemaUUID, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, fmt.Errorf("invalid cinema ID format %s: %w", cinemaID, err)
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, cinemaUUID)
	if err != nil {
		return nil, fmt.Errorf("find cinema: %w", err)
	}
	if cinema == nil {
		return nil, fmt.Errorf("cinema %s: %w", cinemaID, ErrNotFound)
	}

	existing, err := s.repo.Room.FindByCinemaAndNumber(ctx, cinemaUUID, req.RoomNumber)
	if err != nil {
		return nil, fmt.Errorf("check room number uniqueness: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("room %d in cinema %s: %w", req.RoomNumber, cinemaID, ErrDuplicate)
	}

	used, err := s.repo.Room.SumCapacityByCinemaID(ctx, cinemaUUID, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("sum room capacities: %w", err)
	}
	if used+req.Capacity > cinema.TotalSeats {
		return nil, &CapacityExceededError{CinemaTotal: cinema.TotalSeats, Requested: used + req.Capacity}
	}

	now := time.Now()
	room := &entity.ScreeningRoom{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CinemaID:   cinemaUUID,
		RoomNumber: req.RoomNumber,
		Capacity:   req.Capacity,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("cinema_id", cinemaID),
		zap.Int("room_number", room.RoomNumber),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *cinemaService) UpdateRoom(ctx context.Context, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	roomUUID, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, roomUUID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", roomID, ErrNotFound)
	}

	if req.RoomNumber != nil && *req.RoomNumber != room.RoomNumber {
		existing, err := s.repo.Room.FindByCinemaAndNumber(ctx, room.CinemaID, *req.RoomNumber)
		if err != nil {
			return nil, fmt.Errorf("check room number uniqueness: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("room %d: %w", *req.RoomNumber, ErrDuplicate)
		}
		room.RoomNumber = *req.RoomNumber
	}

	if req.Capacity != nil && *req.Capacity != room.Capacity {
		cinema, err := s.repo.Cinema.FindByID(ctx, room.CinemaID)
		if err != nil {
			return nil, fmt.Errorf("find cinema: %w", err)
		}
		if cinema == nil {
			return nil, fmt.Errorf("cinema %s: %w", room.CinemaID.String(), ErrNotFound)
		}

		used, err := s.repo.Room.SumCapacityByCinemaID(ctx, room.CinemaID, roomUUID)
		if err != nil {
			return nil, fmt.Errorf("sum room capacities: %w", err)
		}
		if used+*req.Capacity > cinema.TotalSeats {
			return nil, &CapacityExceededError{CinemaTotal: cinema.TotalSeats, Requested: used + *req.Capacity}
		}
		room.Capacity = *req.Capacity
	}
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *cinemaService) DeleteRoom(ctx context.Context, roomID string) error {
	roomUUID, err := uuid.Parse(roomID)
	if err != nil {
		return fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, roomUUID)
	if err != nil {
		return fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return fmt.Errorf("room %s: %w", roomID, ErrNotFound)
	}

	if err := s.repo.Room.Delete(ctx, roomUUID); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	s.log.Info("Room deleted", zap.String("room_id", roomID))
	return nil
}
