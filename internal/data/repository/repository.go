package repository

import (
	"cinema-reservations/pkg/database"

	"go.uber.org/zap"
)

// Repository bundles every data access interface so the service layer
// takes a single dependency.
type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Cinema      CinemaRepository
	Room        RoomRepository
	Movie       MovieRepository
	Category    CategoryRepository
	Actor       ActorRepository
	Showtime    ShowtimeRepository
	Seat        SeatRepository
	Reservation ReservationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Cinema:      NewCinemaRepository(db, log),
		Room:        NewRoomRepository(db, log),
		Movie:       NewMovieRepository(db, log),
		Category:    NewCategoryRepository(db, log),
		Actor:       NewActorRepository(db, log),
		Showtime:    NewShowtimeRepository(db, log),
		Seat:        NewSeatRepository(db, log),
		Reservation: NewReservationRepository(db, log),
	}
}
