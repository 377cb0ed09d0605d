package usecase

import (
	"context"
	"testing"

	"cinema-reservations/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCinemaService(st *fakeStore) CinemaService {
	return NewCinemaService(newTestRepository(st), testLogger())
}

func TestCreateRoomWithinCapacity(t *testing.T) {
	st := newFakeStore()
	svc := newCinemaService(st)

	cinema, err := svc.CreateCinema(context.Background(), &request.CinemaRequest{
		Name:       "Grand Plaza",
		Address:    "1 Main St",
		TotalSeats: 100,
	})
	require.NoError(t, err)

	_, err = svc.CreateRoom(context.Background(), cinema.ID, &request.RoomRequest{
		RoomNumber: 1,
		Capacity:   60,
	})
	require.NoError(t, err)

	_, err = svc.CreateRoom(context.Background(), cinema.ID, &request.RoomRequest{
		RoomNumber: 2,
		Capacity:   40,
	})
	assert.NoError(t, err)
}

func TestCreateRoomExceedsCinemaCapacity(t *testing.T) {
	st := newFakeStore()
	svc := newCinemaService(st)

	cinema, err := svc.CreateCinema(context.Background(), &request.CinemaRequest{
		Name:       "Grand Plaza",
		Address:    "1 Main St",
		TotalSeats: 100,
	})
	require.NoError(t, err)

	_, err = svc.CreateRoom(context.Background(), cinema.ID, &request.RoomRequest{
		RoomNumber: 1,
		Capacity:   60,
	})
	require.NoError(t, err)

	_, err = svc.CreateRoom(context.Background(), cinema.ID, &request.RoomRequest{
		RoomNumber: 2,
		Capacity:   50,
	})

	var capacityErr *CapacityExceededError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, 100, capacityErr.CinemaTotal)
	assert.Equal(t, 110, capacityErr.Requested)
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	st := newFakeStore()
	svc := newCinemaService(st)

	cinema, err := svc.CreateCinema(context.Background(), &request.CinemaRequest{
		Name:       "Grand Plaza",
		Address:    "1 Main St",
		TotalSeats: 100,
	})
	require.NoError(t, err)

	_, err = svc.CreateRoom(context.Background(), cinema.ID, &request.RoomRequest{
		RoomNumber: 1,
		Capacity:   30,
	})
	require.NoError(t, err)

	_, err = svc.CreateRoom(context.Background(), cinema.ID, &request.RoomRequest{
		RoomNumber: 1,
		Capacity:   30,
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUpdateRoomCapacityExcludesItself(t *testing.T) {
	st := newFakeStore()
	svc := newCinemaService(st)

	cinema, err := svc.CreateCinema(context.Background(), &request.CinemaRequest{
		Name:       "Grand Plaza",
		Address:    "1 Main St",
		TotalSeats: 100,
	})
	require.NoError(t, err)

	room, err := svc.CreateRoom(context.Background(), cinema.ID, &request.RoomRequest{
		RoomNumber: 1,
		Capacity:   60,
	})
	require.NoError(t, err)

	// Growing the same room to the full total is allowed because its
	// own current capacity is not double counted.
	capacity := 100
	updated, err := svc.UpdateRoom(context.Background(), room.ID, &request.RoomUpdateRequest{
		Capacity: &capacity,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Capacity)
}

func TestUpdateCinemaCannotShrinkBelowRooms(t *testing.T) {
	st := newFakeStore()
	svc := newCinemaService(st)

	cinema, err := svc.CreateCinema(context.Background(), &request.CinemaRequest{
		Name:       "Grand Plaza",
		Address:    "1 Main St",
		TotalSeats: 100,
	})
	require.NoError(t, err)

	_, err = svc.CreateRoom(context.Background(), cinema.ID, &request.RoomRequest{
		RoomNumber: 1,
		Capacity:   80,
	})
	require.NoError(t, err)

	smaller := 50
	_, err = svc.UpdateCinema(context.Background(), cinema.ID, &request.CinemaUpdateRequest{
		TotalSeats: &smaller,
	})

	var capacityErr *CapacityExceededError
	assert.ErrorAs(t, err, &capacityErr)
}

func TestCreateCinemaDuplicateName(t *testing.T) {
	st := newFakeStore()
	svc := newCinemaService(st)

	_, err := svc.CreateCinema(context.Background(), &request.CinemaRequest{
		Name:       "Grand Plaza",
		Address:    "1 Main St",
		TotalSeats: 100,
	})
	require.NoError(t, err)

	_, err = svc.CreateCinema(context.Background(), &request.CinemaRequest{
		Name:       "Grand Plaza",
		Address:    "2 Side St",
		TotalSeats: 50,
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}
