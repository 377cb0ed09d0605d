package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"cinema-reservations/internal/data/entity"
	"cinema-reservations/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fakeStore is a mutex-guarded in-memory backend shared by the fake
// repositories so cross-repo effects (a reservation flipping a seat)
// stay consistent within a test.
type fakeStore struct {
	mu           sync.Mutex
	cinemas      map[uuid.UUID]*entity.Cinema
	rooms        map[uuid.UUID]*entity.ScreeningRoom
	movies       map[uuid.UUID]*entity.Movie
	showtimes    map[uuid.UUID]*entity.Showtime
	seats        []*entity.Seat
	groups       map[uuid.UUID]*entity.ReservationGroup
	reservations map[uuid.UUID]*entity.Reservation
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cinemas:      map[uuid.UUID]*entity.Cinema{},
		rooms:        map[uuid.UUID]*entity.ScreeningRoom{},
		movies:       map[uuid.UUID]*entity.Movie{},
		showtimes:    map[uuid.UUID]*entity.Showtime{},
		groups:       map[uuid.UUID]*entity.ReservationGroup{},
		reservations: map[uuid.UUID]*entity.Reservation{},
	}
}

func (st *fakeStore) sortedFreeSeats(showtimeID uuid.UUID) []*entity.Seat {
	var free []*entity.Seat
	for _, seat := range st.seats {
		if seat.ShowtimeID == showtimeID && !seat.IsReserved {
			free = append(free, seat)
		}
	}
	sort.Slice(free, func(i, j int) bool {
		if free[i].Row != free[j].Row {
			return free[i].Row < free[j].Row
		}
		return free[i].Number < free[j].Number
	})
	return free
}

// newTestRepository wires the fakes into the aggregate the services
// expect. Repos not needed by a test stay nil.
func newTestRepository(st *fakeStore) *repository.Repository {
	return &repository.Repository{
		Cinema:      &fakeCinemaRepo{st: st},
		Room:        &fakeRoomRepo{st: st},
		Movie:       &fakeMovieRepo{st: st},
		Showtime:    &fakeShowtimeRepo{st: st},
		Seat:        &fakeSeatRepo{st: st},
		Reservation: &fakeReservationRepo{st: st},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// ---- cinema ----

type fakeCinemaRepo struct{ st *fakeStore }

func (f *fakeCinemaRepo) Create(_ context.Context, cinema *entity.Cinema) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	f.st.cinemas[cinema.ID] = cinema
	return nil
}

func (f *fakeCinemaRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Cinema, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	return f.st.cinemas[id], nil
}

func (f *fakeCinemaRepo) FindByName(_ context.Context, name string) (*entity.Cinema, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	for _, cinema := range f.st.cinemas {
		if cinema.Name == name && cinema.DeletedAt == nil {
			return cinema, nil
		}
	}
	return nil, nil
}

func (f *fakeCinemaRepo) FindAll(_ context.Context, limit, offset int, activeOnly bool) ([]*entity.Cinema, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	var all []*entity.Cinema
	for _, cinema := range f.st.cinemas {
		if activeOnly && !cinema.IsActive {
			continue
		}
		all = append(all, cinema)
	}
	return all, nil
}

func (f *fakeCinemaRepo) CountAll(ctx context.Context, activeOnly bool) (int64, error) {
	all, _ := f.FindAll(ctx, 0, 0, activeOnly)
	return int64(len(all)), nil
}

func (f *fakeCinemaRepo) Update(_ context.Context, cinema *entity.Cinema) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	f.st.cinemas[cinema.ID] = cinema
	return nil
}

func (f *fakeCinemaRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if cinema, ok := f.st.cinemas[id]; ok {
		cinema.IsActive = false
	}
	return nil
}

// ---- room ----

type fakeRoomRepo struct{ st *fakeStore }

func (f *fakeRoomRepo) Create(_ context.Context, room *entity.ScreeningRoom) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	f.st.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ScreeningRoom, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	return f.st.rooms[id], nil
}

func (f *fakeRoomRepo) FindByCinemaID(_ context.Context, cinemaID uuid.UUID) ([]*entity.ScreeningRoom, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	var rooms []*entity.ScreeningRoom
	for _, room := range f.st.rooms {
		if room.CinemaID == cinemaID {
			rooms = append(rooms, room)
		}
	}
	return rooms, nil
}

func (f *fakeRoomRepo) FindByCinemaAndNumber(_ context.Context, cinemaID uuid.UUID, roomNumber int) (*entity.ScreeningRoom, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	for _, room := range f.st.rooms {
		if room.CinemaID == cinemaID && room.RoomNumber == roomNumber {
			return room, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) SumCapacityByCinemaID(_ context.Context, cinemaID, excludeRoomID uuid.UUID) (int, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	total := 0
	for _, room := range f.st.rooms {
		if room.CinemaID == cinemaID && room.ID != excludeRoomID {
			total += room.Capacity
		}
	}
	return total, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room *entity.ScreeningRoom) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	f.st.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	delete(f.st.rooms, id)
	return nil
}

// ---- movie ----

type fakeMovieRepo struct{ st *fakeStore }

func (f *fakeMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	f.st.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	return f.st.movies[id], nil
}

func (f *fakeMovieRepo) FindAll(_ context.Context, limit, offset int, titleFilter *string) ([]*entity.Movie, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	var all []*entity.Movie
	for _, movie := range f.st.movies {
		all = append(all, movie)
	}
	return all, nil
}

func (f *fakeMovieRepo) CountAll(_ context.Context, titleFilter *string) (int64, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	return int64(len(f.st.movies)), nil
}

func (f *fakeMovieRepo) Update(_ context.Context, movie *entity.Movie) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	f.st.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	delete(f.st.movies, id)
	return nil
}

// ---- showtime ----

type fakeShowtimeRepo struct{ st *fakeStore }

func (f *fakeShowtimeRepo) Create(_ context.Context, showtime *entity.Showtime) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	f.st.showtimes[showtime.ID] = showtime
	return nil
}

func (f *fakeShowtimeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Showtime, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	return f.st.showtimes[id], nil
}

func (f *fakeShowtimeRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Showtime, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	var all []*entity.Showtime
	for _, showtime := range f.st.showtimes {
		all = append(all, showtime)
	}
	return all, nil
}

func (f *fakeShowtimeRepo) CountAll(_ context.Context) (int64, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	return int64(len(f.st.showtimes)), nil
}

func (f *fakeShowtimeRepo) FindByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.Showtime, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	var all []*entity.Showtime
	for _, showtime := range f.st.showtimes {
		if showtime.MovieID == movieID {
			all = append(all, showtime)
		}
	}
	return all, nil
}

func (f *fakeShowtimeRepo) CountActiveInWindow(_ context.Context, roomID uuid.UUID, from, to time.Time, excludeID uuid.UUID) (int64, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	var count int64
	for _, showtime := range f.st.showtimes {
		if showtime.ID == excludeID || showtime.RoomID != roomID || !showtime.IsActive {
			continue
		}
		if !showtime.ShowDate.Before(from) && !showtime.ShowDate.After(to) {
			count++
		}
	}
	return count, nil
}

func (f *fakeShowtimeRepo) Update(_ context.Context, showtime *entity.Showtime) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	f.st.showtimes[showtime.ID] = showtime
	return nil
}

func (f *fakeShowtimeRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if showtime, ok := f.st.showtimes[id]; ok {
		showtime.IsActive = false
	}
	return nil
}

// ---- seat ----

type fakeSeatRepo struct{ st *fakeStore }

func (f *fakeSeatRepo) CreateBatch(_ context.Context, seats []*entity.Seat) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	f.st.seats = append(f.st.seats, seats...)
	return nil
}

func (f *fakeSeatRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Seat, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	for _, seat := range f.st.seats {
		if seat.ID == id {
			return seat, nil
		}
	}
	return nil, nil
}

func (f *fakeSeatRepo) FindByShowtimeID(_ context.Context, showtimeID uuid.UUID) ([]*entity.Seat, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	var seats []*entity.Seat
	for _, seat := range f.st.seats {
		if seat.ShowtimeID == showtimeID {
			seats = append(seats, seat)
		}
	}
	sort.Slice(seats, func(i, j int) bool {
		if seats[i].Row != seats[j].Row {
			return seats[i].Row < seats[j].Row
		}
		return seats[i].Number < seats[j].Number
	})
	return seats, nil
}

func (f *fakeSeatRepo) CountByShowtimeID(ctx context.Context, showtimeID uuid.UUID) (int64, error) {
	seats, _ := f.FindByShowtimeID(ctx, showtimeID)
	return int64(len(seats)), nil
}

func (f *fakeSeatRepo) CountFreeByShowtimeID(_ context.Context, showtimeID uuid.UUID) (int64, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	var count int64
	for _, seat := range f.st.seats {
		if seat.ShowtimeID == showtimeID && !seat.IsReserved {
			count++
		}
	}
	return count, nil
}

// ---- reservation ----

type fakeReservationRepo struct{ st *fakeStore }

func (f *fakeReservationRepo) ReserveSeats(_ context.Context, userID, showtimeID uuid.UUID, quantity int) (*entity.ReservationGroup, []*repository.ReservedSeat, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()

	free := f.st.sortedFreeSeats(showtimeID)
	if len(free) == 0 {
		return nil, nil, repository.ErrNoSeatsAvailable
	}
	if len(free) < quantity {
		return nil, nil, &repository.NotEnoughSeatsError{Available: len(free)}
	}

	var group *entity.ReservationGroup
	for _, g := range f.st.groups {
		if g.UserID == userID && g.ShowtimeID == showtimeID {
			group = g
			break
		}
	}
	if group == nil {
		now := time.Now()
		group = &entity.ReservationGroup{
			BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			UserID:       userID,
			ShowtimeID:   showtimeID,
		}
		f.st.groups[group.ID] = group
	}

	now := time.Now()
	reserved := make([]*repository.ReservedSeat, 0, quantity)
	for _, seat := range free[:quantity] {
		seat.IsReserved = true
		reservation := &entity.Reservation{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			GroupID:    group.ID,
			SeatID:     seat.ID,
			ReservedAt: now,
		}
		f.st.reservations[reservation.ID] = reservation
		reserved = append(reserved, &repository.ReservedSeat{Reservation: reservation, Seat: seat})
	}

	return group, reserved, nil
}

func (f *fakeReservationRepo) CancelGroup(_ context.Context, groupID uuid.UUID) (int, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()

	var seatIDs []uuid.UUID
	for id, reservation := range f.st.reservations {
		if reservation.GroupID == groupID {
			seatIDs = append(seatIDs, reservation.SeatID)
			delete(f.st.reservations, id)
		}
	}
	if len(seatIDs) == 0 {
		return 0, repository.ErrNothingToRelease
	}

	for _, seat := range f.st.seats {
		for _, seatID := range seatIDs {
			if seat.ID == seatID {
				seat.IsReserved = false
			}
		}
	}
	delete(f.st.groups, groupID)

	return len(seatIDs), nil
}

func (f *fakeReservationRepo) ReassignSeat(_ context.Context, reservationID, newSeatID uuid.UUID) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()

	reservation, ok := f.st.reservations[reservationID]
	if !ok {
		return repository.ErrNoSeatsAvailable
	}

	var newSeat *entity.Seat
	for _, seat := range f.st.seats {
		if seat.ID == newSeatID {
			newSeat = seat
			break
		}
	}
	if newSeat == nil || newSeat.IsReserved {
		return repository.ErrSeatAlreadyReserved
	}

	newSeat.IsReserved = true
	for _, seat := range f.st.seats {
		if seat.ID == reservation.SeatID {
			seat.IsReserved = false
		}
	}
	reservation.SeatID = newSeatID

	return nil
}

func (f *fakeReservationRepo) FindGroupByID(_ context.Context, id uuid.UUID) (*entity.ReservationGroup, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	return f.st.groups[id], nil
}

func (f *fakeReservationRepo) FindGroupsByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ReservationGroup, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	var groups []*entity.ReservationGroup
	for _, group := range f.st.groups {
		if group.UserID == userID {
			groups = append(groups, group)
		}
	}
	return groups, nil
}

func (f *fakeReservationRepo) CountGroupsByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	groups, _ := f.FindGroupsByUserID(ctx, userID, 0, 0)
	return int64(len(groups)), nil
}

func (f *fakeReservationRepo) FindReservationsByGroupID(_ context.Context, groupID uuid.UUID) ([]*repository.ReservedSeat, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()

	var reserved []*repository.ReservedSeat
	for _, reservation := range f.st.reservations {
		if reservation.GroupID != groupID {
			continue
		}
		for _, seat := range f.st.seats {
			if seat.ID == reservation.SeatID {
				reserved = append(reserved, &repository.ReservedSeat{Reservation: reservation, Seat: seat})
				break
			}
		}
	}
	sort.Slice(reserved, func(i, j int) bool {
		if reserved[i].Seat.Row != reserved[j].Seat.Row {
			return reserved[i].Seat.Row < reserved[j].Seat.Row
		}
		return reserved[i].Seat.Number < reserved[j].Seat.Number
	})
	return reserved, nil
}

func (f *fakeReservationRepo) FindReservationByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	return f.st.reservations[id], nil
}
