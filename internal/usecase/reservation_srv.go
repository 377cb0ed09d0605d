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

type ReservationService interface {
	// CreateReservation books quantity seats for the user on the
	// showtime. Allocation is all-or-nothing; repeated calls for the
	// same showtime grow the user's existing group.
	CreateReservation(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationGroupResponse, error)
	GetUserReservations(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationGroupResponse], error)
	GetReservationByID(ctx context.Context, userID string, role entity.UserRole, groupID string) (*response.ReservationGroupResponse, error)
	// UpdateReservation grows the group or moves one of its
	// reservations to a specific free seat, depending on the request.
	UpdateReservation(ctx context.Context, userID string, role entity.UserRole, groupID string, req *request.UpdateReservationRequest) (*response.ReservationGroupResponse, error)
	// CancelReservation releases every seat in the group and deletes
	// it. Only the owner or an admin may cancel.
	CancelReservation(ctx context.Context, userID string, role entity.UserRole, groupID string) (int, error)
}

type reservationService struct {
	repo     *repository.Repository
	log      *zap.Logger
	maxSeats int
}

func NewReservationService(repo *repository.Repository, log *zap.Logger, maxSeats int) ReservationService {
	return &reservationService{
		repo:     repo,
		log:      log.With(zap.String("service", "reservation")),
		maxSeats: maxSeats,
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationGroupResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}
	showtimeUUID, err := uuid.Parse(req.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID format %s: %w", req.ShowtimeID, err)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeUUID)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s: %w", req.ShowtimeID, ErrNotFound)
	}
	if !showtime.IsActive {
		return nil, ErrShowtimeInactive
	}
	if showtime.ShowDate.Before(time.Now()) {
		return nil, ErrPastShowDate
	}

	if req.Quantity > s.maxSeats {
		return nil, ErrMaxSeatsExceeded
	}

	group, _, err := s.repo.Reservation.ReserveSeats(ctx, userUUID, showtimeUUID, req.Quantity)
	if err != nil {
		return nil, err
	}

	return s.groupResponse(ctx, group)
}

// groupResponse loads the group's full reservation list so the response
// reflects every seat it holds, not just the ones touched by the call.
func (s *reservationService) groupResponse(ctx context.Context, group *entity.ReservationGroup) (*response.ReservationGroupResponse, error) {
	reserved, err := s.repo.Reservation.FindReservationsByGroupID(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("load group reservations: %w", err)
	}

	resp := response.GroupToResponse(group, reserved)
	return &resp, nil
}

func (s *reservationService) GetUserReservations(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationGroupResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	groups, err := s.repo.Reservation.FindGroupsByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list user reservations: %w", err)
	}

	total, err := s.repo.Reservation.CountGroupsByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("count user reservations: %w", err)
	}

	data := make([]response.ReservationGroupResponse, 0, len(groups))
	for _, group := range groups {
		resp, err := s.groupResponse(ctx, group)
		if err != nil {
			return nil, err
		}
		data = append(data, *resp)
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

// loadOwnedGroup fetches the group and enforces that the caller owns it
// or is an admin.
func (s *reservationService) loadOwnedGroup(ctx context.Context, userID string, role entity.UserRole, groupID string) (*entity.ReservationGroup, error) {
	groupUUID, err := uuid.Parse(groupID)
	if err != nil {
		return nil, fmt.Errorf("invalid group ID format %s: %w", groupID, err)
	}

	group, err := s.repo.Reservation.FindGroupByID(ctx, groupUUID)
	if err != nil {
		return nil, fmt.Errorf("find reservation group: %w", err)
	}
	if group == nil {
		return nil, fmt.Errorf("reservation %s: %w", groupID, ErrNotFound)
	}

	if role != entity.RoleAdmin && group.UserID.String() != userID {
		return nil, ErrForbidden
	}

	return group, nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, userID string, role entity.UserRole, groupID string) (*response.ReservationGroupResponse, error) {
	group, err := s.loadOwnedGroup(ctx, userID, role, groupID)
	if err != nil {
		return nil, err
	}
	return s.groupResponse(ctx, group)
}

func (s *reservationService) UpdateReservation(ctx context.Context, userID string, role entity.UserRole, groupID string, req *request.UpdateReservationRequest) (*response.ReservationGroupResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	grow := req.AddQuantity != nil
	move := req.ReservationID != nil && req.SeatID != nil
	if grow == move {
		return nil, ErrInvalidUpdate
	}

	group, err := s.loadOwnedGroup(ctx, userID, role, groupID)
	if err != nil {
		return nil, err
	}

	if grow {
		return s.growGroup(ctx, group, *req.AddQuantity)
	}
	return s.moveSeat(ctx, group, *req.ReservationID, *req.SeatID)
}

func (s *reservationService) growGroup(ctx context.Context, group *entity.ReservationGroup, addQuantity int) (*response.ReservationGroupResponse, error) {
	existing, err := s.repo.Reservation.FindReservationsByGroupID(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("load group reservations: %w", err)
	}
	if len(existing)+addQuantity > s.maxSeats {
		return nil, ErrMaxSeatsExceeded
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, group.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil || !showtime.IsActive {
		return nil, ErrShowtimeInactive
	}
	if showtime.ShowDate.Before(time.Now()) {
		return nil, ErrPastShowDate
	}

	group, _, err = s.repo.Reservation.ReserveSeats(ctx, group.UserID, group.ShowtimeID, addQuantity)
	if err != nil {
		return nil, err
	}

	return s.groupResponse(ctx, group)
}

func (s *reservationService) moveSeat(ctx context.Context, group *entity.ReservationGroup, reservationID, seatID string) (*response.ReservationGroupResponse, error) {
	reservationUUID, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}
	seatUUID, err := uuid.Parse(seatID)
	if err != nil {
		return nil, fmt.Errorf("invalid seat ID format %s: %w", seatID, err)
	}

	reservation, err := s.repo.Reservation.FindReservationByID(ctx, reservationUUID)
	if err != nil {
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	if reservation == nil || reservation.GroupID != group.ID {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
	}

	seat, err := s.repo.Seat.FindByID(ctx, seatUUID)
	if err != nil {
		return nil, fmt.Errorf("find seat: %w", err)
	}
	if seat == nil {
		return nil, fmt.Errorf("seat %s: %w", seatID, ErrNotFound)
	}
	if seat.ShowtimeID != group.ShowtimeID {
		return nil, ErrSeatWrongShowtime
	}

	if err := s.repo.Reservation.ReassignSeat(ctx, reservationUUID, seatUUID); err != nil {
		return nil, err
	}

	return s.groupResponse(ctx, group)
}

func (s *reservationService) CancelReservation(ctx context.Context, userID string, role entity.UserRole, groupID string) (int, error) {
	group, err := s.loadOwnedGroup(ctx, userID, role, groupID)
	if err != nil {
		return 0, err
	}

	released, err := s.repo.Reservation.CancelGroup(ctx, group.ID)
	if err != nil {
		return 0, err
	}

	s.log.Info("Reservation cancelled",
		zap.String("group_id", groupID),
		zap.String("user_id", userID),
		zap.Int("seats_released", released),
	)

	return released, nil
}
