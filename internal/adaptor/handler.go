package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"cinema-reservations/internal/data/repository"
	"cinema-reservations/internal/usecase"
	"cinema-reservations/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Cinema      *CinemaHandler
	Movie       *MovieHandler
	Showtime    *ShowtimeHandler
	Reservation *ReservationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		User:        NewUserHandler(service.User, log),
		Cinema:      NewCinemaHandler(service.Cinema, log),
		Movie:       NewMovieHandler(service.Movie, log),
		Showtime:    NewShowtimeHandler(service.Showtime, log),
		Reservation: NewReservationHandler(service.Reservation, log),
	}
}

// writeServiceError maps service errors onto the response envelope.
// Every handler funnels its failures through here so status codes stay
// consistent across the API.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError
	var conflictErr *usecase.ScheduleConflictError
	var capacityErr *usecase.CapacityExceededError
	var shortfallErr *repository.NotEnoughSeatsError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Any("errors", validationErr.Fields))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.As(err, &conflictErr):
		log.Warn(operation+" failed - schedule conflict", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), map[string]string{
			"suggested_time": conflictErr.Suggested.Format("2006-01-02T15:04:05Z07:00"),
		})

	case errors.As(err, &capacityErr):
		log.Warn(operation+" failed - capacity exceeded", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.As(err, &shortfallErr):
		log.Warn(operation+" failed - not enough seats", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), map[string]int{
			"available": shortfallErr.Available,
		})

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrDuplicate),
		errors.Is(err, usecase.ErrPastShowDate),
		errors.Is(err, usecase.ErrCinemaInactive),
		errors.Is(err, usecase.ErrShowtimeInactive),
		errors.Is(err, usecase.ErrInvalidUpdate),
		errors.Is(err, usecase.ErrMaxSeatsExceeded),
		errors.Is(err, usecase.ErrSeatWrongShowtime),
		errors.Is(err, repository.ErrNoSeatsAvailable),
		errors.Is(err, repository.ErrSeatAlreadyReserved),
		errors.Is(err, repository.ErrNothingToRelease):
		log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "invalid"):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
