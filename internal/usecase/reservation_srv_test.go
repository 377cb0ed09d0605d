package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cinema-reservations/internal/data/entity"
	"cinema-reservations/internal/data/repository"
	"cinema-reservations/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedShowtime(st *fakeStore, capacity int, showDate time.Time) *entity.Showtime {
	now := time.Now()
	showtime := &entity.Showtime{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		MovieID:  uuid.New(),
		RoomID:   uuid.New(),
		ShowDate: showDate,
		IsActive: true,
	}
	st.showtimes[showtime.ID] = showtime
	st.seats = append(st.seats, entity.GenerateSeats(showtime.ID, capacity, []string{"A", "B", "C"}, now)...)
	return showtime
}

func newReservationService(st *fakeStore) ReservationService {
	return NewReservationService(newTestRepository(st), testLogger(), 20)
}

func TestCreateReservationAllocatesLowestSeatsFirst(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 30, time.Now().Add(24*time.Hour))
	svc := newReservationService(st)
	userID := uuid.New().String()

	group, err := svc.CreateReservation(context.Background(), userID, &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   3,
	})
	require.NoError(t, err)
	require.Len(t, group.Reservations, 3)

	assert.Equal(t, "A1", group.Reservations[0].Seat.Label)
	assert.Equal(t, "A2", group.Reservations[1].Seat.Label)
	assert.Equal(t, "A3", group.Reservations[2].Seat.Label)
}

func TestCreateReservationAllOrNothing(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 2, time.Now().Add(24*time.Hour))
	svc := newReservationService(st)

	_, err := svc.CreateReservation(context.Background(), uuid.New().String(), &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   5,
	})

	var shortfall *repository.NotEnoughSeatsError
	require.ErrorAs(t, err, &shortfall)
	assert.Equal(t, 2, shortfall.Available)

	// No seat may be left reserved after a failed request.
	for _, seat := range st.seats {
		assert.False(t, seat.IsReserved)
	}
	assert.Empty(t, st.reservations)
}

func TestCreateReservationNoSeatsAvailable(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 2, time.Now().Add(24*time.Hour))
	svc := newReservationService(st)

	_, err := svc.CreateReservation(context.Background(), uuid.New().String(), &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   2,
	})
	require.NoError(t, err)

	_, err = svc.CreateReservation(context.Background(), uuid.New().String(), &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   1,
	})
	assert.ErrorIs(t, err, repository.ErrNoSeatsAvailable)
}

func TestCreateReservationReusesGroupForSameShowtime(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 10, time.Now().Add(24*time.Hour))
	svc := newReservationService(st)
	userID := uuid.New().String()

	first, err := svc.CreateReservation(context.Background(), userID, &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   2,
	})
	require.NoError(t, err)

	second, err := svc.CreateReservation(context.Background(), userID, &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, second.Reservations, 4)
}

func TestCreateReservationRejectsInactiveShowtime(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 10, time.Now().Add(24*time.Hour))
	showtime.IsActive = false
	svc := newReservationService(st)

	_, err := svc.CreateReservation(context.Background(), uuid.New().String(), &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   1,
	})
	assert.ErrorIs(t, err, ErrShowtimeInactive)
}

func TestCreateReservationRejectsPastShowtime(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 10, time.Now().Add(-time.Hour))
	svc := newReservationService(st)

	_, err := svc.CreateReservation(context.Background(), uuid.New().String(), &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   1,
	})
	assert.ErrorIs(t, err, ErrPastShowDate)
}

func TestCreateReservationQuantityValidation(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 50, time.Now().Add(24*time.Hour))
	svc := newReservationService(st)

	var validationErr *ValidationError

	_, err := svc.CreateReservation(context.Background(), uuid.New().String(), &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   0,
	})
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.CreateReservation(context.Background(), uuid.New().String(), &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   25,
	})
	assert.ErrorAs(t, err, &validationErr)
}

func TestConcurrentReservationsSingleWinner(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 1, time.Now().Add(24*time.Hour))
	svc := newReservationService(st)

	const contenders = 16
	var wg sync.WaitGroup
	results := make([]error, contenders)

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.CreateReservation(context.Background(), uuid.New().String(), &request.CreateReservationRequest{
				ShowtimeID: showtime.ID.String(),
				Quantity:   1,
			})
			results[i] = err
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, repository.ErrNoSeatsAvailable)
		}
	}
	assert.Equal(t, 1, winners)
	assert.Len(t, st.reservations, 1)
}

func TestGetReservationOwnershipEnforced(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 10, time.Now().Add(24*time.Hour))
	svc := newReservationService(st)
	ownerID := uuid.New().String()

	group, err := svc.CreateReservation(context.Background(), ownerID, &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   2,
	})
	require.NoError(t, err)

	// A different customer is rejected.
	_, err = svc.GetReservationByID(context.Background(), uuid.New().String(), entity.RoleCustomer, group.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// The owner and an admin both succeed.
	_, err = svc.GetReservationByID(context.Background(), ownerID, entity.RoleCustomer, group.ID)
	assert.NoError(t, err)

	_, err = svc.GetReservationByID(context.Background(), uuid.New().String(), entity.RoleAdmin, group.ID)
	assert.NoError(t, err)
}

func TestCancelReservationReleasesAllSeats(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 10, time.Now().Add(24*time.Hour))
	svc := newReservationService(st)
	userID := uuid.New().String()

	group, err := svc.CreateReservation(context.Background(), userID, &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   3,
	})
	require.NoError(t, err)

	released, err := svc.CancelReservation(context.Background(), userID, entity.RoleCustomer, group.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, released)

	for _, seat := range st.seats {
		assert.False(t, seat.IsReserved)
	}

	// The group is gone; a second cancel reports not found.
	_, err = svc.CancelReservation(context.Background(), userID, entity.RoleCustomer, group.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelReservationForbiddenForOtherUser(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 10, time.Now().Add(24*time.Hour))
	svc := newReservationService(st)

	group, err := svc.CreateReservation(context.Background(), uuid.New().String(), &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   1,
	})
	require.NoError(t, err)

	_, err = svc.CancelReservation(context.Background(), uuid.New().String(), entity.RoleCustomer, group.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateReservationGrowsGroup(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 10, time.Now().Add(24*time.Hour))
	svc := newReservationService(st)
	userID := uuid.New().String()

	group, err := svc.CreateReservation(context.Background(), userID, &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   2,
	})
	require.NoError(t, err)

	add := 3
	updated, err := svc.UpdateReservation(context.Background(), userID, entity.RoleCustomer, group.ID, &request.UpdateReservationRequest{
		AddQuantity: &add,
	})
	require.NoError(t, err)
	assert.Len(t, updated.Reservations, 5)
}

func TestUpdateReservationGrowRespectsSeatLimit(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 50, time.Now().Add(24*time.Hour))
	svc := newReservationService(st)
	userID := uuid.New().String()

	group, err := svc.CreateReservation(context.Background(), userID, &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   18,
	})
	require.NoError(t, err)

	add := 5
	_, err = svc.UpdateReservation(context.Background(), userID, entity.RoleCustomer, group.ID, &request.UpdateReservationRequest{
		AddQuantity: &add,
	})
	assert.ErrorIs(t, err, ErrMaxSeatsExceeded)
}

func TestUpdateReservationMovesSeat(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 9, time.Now().Add(24*time.Hour))
	svc := newReservationService(st)
	userID := uuid.New().String()

	group, err := svc.CreateReservation(context.Background(), userID, &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   1,
	})
	require.NoError(t, err)

	// Move from A1 to the last seat of row C.
	var target *entity.Seat
	for _, seat := range st.seats {
		if seat.Row == "C" && seat.Number == 3 {
			target = seat
		}
	}
	require.NotNil(t, target)

	reservationID := group.Reservations[0].ID
	seatID := target.ID.String()
	updated, err := svc.UpdateReservation(context.Background(), userID, entity.RoleCustomer, group.ID, &request.UpdateReservationRequest{
		ReservationID: &reservationID,
		SeatID:        &seatID,
	})
	require.NoError(t, err)
	require.Len(t, updated.Reservations, 1)
	assert.Equal(t, "C3", updated.Reservations[0].Seat.Label)

	// The old seat is free again.
	for _, seat := range st.seats {
		if seat.Row == "A" && seat.Number == 1 {
			assert.False(t, seat.IsReserved)
		}
	}
}

func TestUpdateReservationMoveToTakenSeat(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 9, time.Now().Add(24*time.Hour))
	svc := newReservationService(st)
	userID := uuid.New().String()

	group, err := svc.CreateReservation(context.Background(), userID, &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   2,
	})
	require.NoError(t, err)

	// Target the second seat of the same group, which is taken.
	reservationID := group.Reservations[0].ID
	seatID := group.Reservations[1].Seat.ID
	_, err = svc.UpdateReservation(context.Background(), userID, entity.RoleCustomer, group.ID, &request.UpdateReservationRequest{
		ReservationID: &reservationID,
		SeatID:        &seatID,
	})
	assert.ErrorIs(t, err, repository.ErrSeatAlreadyReserved)
}

func TestUpdateReservationRejectsMixedRequest(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 9, time.Now().Add(24*time.Hour))
	svc := newReservationService(st)
	userID := uuid.New().String()

	group, err := svc.CreateReservation(context.Background(), userID, &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   1,
	})
	require.NoError(t, err)

	// Neither field set.
	_, err = svc.UpdateReservation(context.Background(), userID, entity.RoleCustomer, group.ID, &request.UpdateReservationRequest{})
	assert.True(t, errors.Is(err, ErrInvalidUpdate))
}

func TestUpdateReservationMoveRejectsOtherShowtimeSeat(t *testing.T) {
	st := newFakeStore()
	showtime := seedShowtime(st, 9, time.Now().Add(24*time.Hour))
	other := seedShowtime(st, 9, time.Now().Add(48*time.Hour))
	svc := newReservationService(st)
	userID := uuid.New().String()

	group, err := svc.CreateReservation(context.Background(), userID, &request.CreateReservationRequest{
		ShowtimeID: showtime.ID.String(),
		Quantity:   1,
	})
	require.NoError(t, err)

	var foreign *entity.Seat
	for _, seat := range st.seats {
		if seat.ShowtimeID == other.ID {
			foreign = seat
			break
		}
	}
	require.NotNil(t, foreign)

	reservationID := group.Reservations[0].ID
	seatID := foreign.ID.String()
	_, err = svc.UpdateReservation(context.Background(), userID, entity.RoleCustomer, group.ID, &request.UpdateReservationRequest{
		ReservationID: &reservationID,
		SeatID:        &seatID,
	})
	assert.ErrorIs(t, err, ErrSeatWrongShowtime)
}
