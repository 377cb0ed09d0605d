package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-reservations/internal/data/entity"
	"cinema-reservations/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCinemaRoom(st *fakeStore, capacity int, active bool) (*entity.Cinema, *entity.ScreeningRoom) {
	now := time.Now()
	cinema := &entity.Cinema{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:       "Grand Plaza",
		Address:    "1 Main St",
		TotalSeats: capacity,
		IsActive:   active,
	}
	room := &entity.ScreeningRoom{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		CinemaID:   cinema.ID,
		RoomNumber: 1,
		Capacity:   capacity,
	}
	st.cinemas[cinema.ID] = cinema
	st.rooms[room.ID] = room
	return cinema, room
}

func seedMovie(st *fakeStore) *entity.Movie {
	now := time.Now()
	movie := &entity.Movie{
		Base:              entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title:             "The Long Goodbye",
		ReleaseDate:       now.AddDate(0, -1, 0),
		DurationInMinutes: 112,
	}
	st.movies[movie.ID] = movie
	return movie
}

func newShowtimeService(st *fakeStore) ShowtimeService {
	return NewShowtimeService(newTestRepository(st), testLogger(), []string{"A", "B", "C"})
}

func TestCreateShowtimeGeneratesFullInventory(t *testing.T) {
	st := newFakeStore()
	_, room := seedCinemaRoom(st, 32, true)
	movie := seedMovie(st)
	svc := newShowtimeService(st)

	showDate := time.Now().Add(48 * time.Hour)
	resp, err := svc.CreateShowtime(context.Background(), &request.ShowtimeRequest{
		MovieID:  movie.ID.String(),
		RoomID:   room.ID.String(),
		ShowDate: showDate.Format(time.RFC3339),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(32), resp.TotalSeats)
	assert.Equal(t, int64(32), resp.AvailableSeats)
	assert.Len(t, st.seats, 32)
}

func TestCreateShowtimeRejectsPastDate(t *testing.T) {
	st := newFakeStore()
	_, room := seedCinemaRoom(st, 10, true)
	movie := seedMovie(st)
	svc := newShowtimeService(st)

	_, err := svc.CreateShowtime(context.Background(), &request.ShowtimeRequest{
		MovieID:  movie.ID.String(),
		RoomID:   room.ID.String(),
		ShowDate: time.Now().Add(-time.Hour).Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, ErrPastShowDate)
}

func TestCreateShowtimeRejectsInactiveCinema(t *testing.T) {
	st := newFakeStore()
	_, room := seedCinemaRoom(st, 10, false)
	movie := seedMovie(st)
	svc := newShowtimeService(st)

	_, err := svc.CreateShowtime(context.Background(), &request.ShowtimeRequest{
		MovieID:  movie.ID.String(),
		RoomID:   room.ID.String(),
		ShowDate: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, ErrCinemaInactive)
}

func TestCreateShowtimeConflictWindow(t *testing.T) {
	st := newFakeStore()
	_, room := seedCinemaRoom(st, 10, true)
	movie := seedMovie(st)
	svc := newShowtimeService(st)

	first := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	_, err := svc.CreateShowtime(context.Background(), &request.ShowtimeRequest{
		MovieID:  movie.ID.String(),
		RoomID:   room.ID.String(),
		ShowDate: first.Format(time.RFC3339),
	})
	require.NoError(t, err)

	// Two hours later lands inside the conflict window.
	second := first.Add(2 * time.Hour)
	_, err = svc.CreateShowtime(context.Background(), &request.ShowtimeRequest{
		MovieID:  movie.ID.String(),
		RoomID:   room.ID.String(),
		ShowDate: second.Format(time.RFC3339),
	})

	var conflict *ScheduleConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, second.Add(entity.ConflictWindow).Unix(), conflict.Suggested.Unix())

	// Exactly the window boundary plus a minute is accepted.
	third := first.Add(entity.ConflictWindow + time.Minute)
	_, err = svc.CreateShowtime(context.Background(), &request.ShowtimeRequest{
		MovieID:  movie.ID.String(),
		RoomID:   room.ID.String(),
		ShowDate: third.Format(time.RFC3339),
	})
	assert.NoError(t, err)
}

func TestCreateShowtimeConflictIgnoresOtherRooms(t *testing.T) {
	st := newFakeStore()
	_, roomA := seedCinemaRoom(st, 10, true)
	movie := seedMovie(st)

	now := time.Now()
	cinemaB := &entity.Cinema{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:       "Annex",
		TotalSeats: 10,
		IsActive:   true,
	}
	roomB := &entity.ScreeningRoom{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		CinemaID:   cinemaB.ID,
		RoomNumber: 1,
		Capacity:   10,
	}
	st.cinemas[cinemaB.ID] = cinemaB
	st.rooms[roomB.ID] = roomB

	svc := newShowtimeService(st)
	showDate := time.Now().Add(48 * time.Hour)

	_, err := svc.CreateShowtime(context.Background(), &request.ShowtimeRequest{
		MovieID:  movie.ID.String(),
		RoomID:   roomA.ID.String(),
		ShowDate: showDate.Format(time.RFC3339),
	})
	require.NoError(t, err)

	// Same slot in a different room is fine.
	_, err = svc.CreateShowtime(context.Background(), &request.ShowtimeRequest{
		MovieID:  movie.ID.String(),
		RoomID:   roomB.ID.String(),
		ShowDate: showDate.Format(time.RFC3339),
	})
	assert.NoError(t, err)
}

func TestShowtimeAvailabilityTracksReservations(t *testing.T) {
	st := newFakeStore()
	_, room := seedCinemaRoom(st, 12, true)
	movie := seedMovie(st)
	showtimeSvc := newShowtimeService(st)
	reservationSvc := newReservationService(st)

	created, err := showtimeSvc.CreateShowtime(context.Background(), &request.ShowtimeRequest{
		MovieID:  movie.ID.String(),
		RoomID:   room.ID.String(),
		ShowDate: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)

	_, err = reservationSvc.CreateReservation(context.Background(), uuid.New().String(), &request.CreateReservationRequest{
		ShowtimeID: created.ID,
		Quantity:   5,
	})
	require.NoError(t, err)

	resp, err := showtimeSvc.GetShowtimeByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.TotalSeats)
	assert.Equal(t, int64(7), resp.AvailableSeats)
	assert.False(t, resp.IsFull)

	_, err = reservationSvc.CreateReservation(context.Background(), uuid.New().String(), &request.CreateReservationRequest{
		ShowtimeID: created.ID,
		Quantity:   7,
	})
	require.NoError(t, err)

	resp, err = showtimeSvc.GetShowtimeByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.AvailableSeats)
	assert.True(t, resp.IsFull)
}

func TestGetSeatMapReflectsReservations(t *testing.T) {
	st := newFakeStore()
	_, room := seedCinemaRoom(st, 9, true)
	movie := seedMovie(st)
	showtimeSvc := newShowtimeService(st)
	reservationSvc := newReservationService(st)

	created, err := showtimeSvc.CreateShowtime(context.Background(), &request.ShowtimeRequest{
		MovieID:  movie.ID.String(),
		RoomID:   room.ID.String(),
		ShowDate: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)

	_, err = reservationSvc.CreateReservation(context.Background(), uuid.New().String(), &request.CreateReservationRequest{
		ShowtimeID: created.ID,
		Quantity:   2,
	})
	require.NoError(t, err)

	seatMap, err := showtimeSvc.GetSeatMap(context.Background(), created.ID)
	require.NoError(t, err)

	require.Len(t, seatMap.Rows, 3)
	require.Len(t, seatMap.Rows["A"], 3)
	assert.True(t, seatMap.Rows["A"][0].IsReserved)
	assert.True(t, seatMap.Rows["A"][1].IsReserved)
	assert.False(t, seatMap.Rows["A"][2].IsReserved)
	assert.False(t, seatMap.Rows["B"][0].IsReserved)
}

func TestGetSeatMapUnknownShowtime(t *testing.T) {
	st := newFakeStore()
	svc := newShowtimeService(st)

	_, err := svc.GetSeatMap(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateShowtimeRescheduleChecksConflicts(t *testing.T) {
	st := newFakeStore()
	_, room := seedCinemaRoom(st, 10, true)
	movie := seedMovie(st)
	svc := newShowtimeService(st)

	first := time.Now().Add(48 * time.Hour)
	created, err := svc.CreateShowtime(context.Background(), &request.ShowtimeRequest{
		MovieID:  movie.ID.String(),
		RoomID:   room.ID.String(),
		ShowDate: first.Format(time.RFC3339),
	})
	require.NoError(t, err)

	// Rescheduling against itself must not count as a conflict.
	newDate := first.Add(time.Hour).Format(time.RFC3339)
	_, err = svc.UpdateShowtime(context.Background(), created.ID, &request.ShowtimeUpdateRequest{
		ShowDate: &newDate,
	})
	assert.NoError(t, err)
}
