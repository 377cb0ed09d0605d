package usecase

import (
	"time"

	"cinema-reservations/internal/data/repository"
	"cinema-reservations/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Cinema      CinemaService
	Movie       MovieService
	Showtime    ShowtimeService
	Reservation ReservationService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	sessionExpiry := time.Duration(config.Session.ExpiryHours) * time.Hour

	return &Service{
		Auth:        NewAuthService(repo, log, sessionExpiry),
		User:        NewUserService(repo, log),
		Cinema:      NewCinemaService(repo, log),
		Movie:       NewMovieService(repo, log),
		Showtime:    NewShowtimeService(repo, log, config.App.SeatRows),
		Reservation: NewReservationService(repo, log, config.App.MaxSeatsPerBooking),
	}
}
