package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSeatsEvenSplit(t *testing.T) {
	showtimeID := uuid.New()
	seats := GenerateSeats(showtimeID, 30, []string{"A", "B", "C"}, time.Now())

	require.Len(t, seats, 30)

	perRow := map[string]int{}
	for _, seat := range seats {
		perRow[seat.Row]++
		assert.Equal(t, showtimeID, seat.ShowtimeID)
		assert.False(t, seat.IsReserved)
	}

	assert.Equal(t, 10, perRow["A"])
	assert.Equal(t, 10, perRow["B"])
	assert.Equal(t, 10, perRow["C"])
}

func TestGenerateSeatsRemainderGoesToLastRow(t *testing.T) {
	seats := GenerateSeats(uuid.New(), 32, []string{"A", "B", "C"}, time.Now())

	require.Len(t, seats, 32)

	perRow := map[string]int{}
	for _, seat := range seats {
		perRow[seat.Row]++
	}

	assert.Equal(t, 10, perRow["A"])
	assert.Equal(t, 10, perRow["B"])
	assert.Equal(t, 12, perRow["C"])
}

func TestGenerateSeatsNumbersStartAtOnePerRow(t *testing.T) {
	seats := GenerateSeats(uuid.New(), 6, []string{"A", "B"}, time.Now())

	require.Len(t, seats, 6)
	assert.Equal(t, "A1", seats[0].Label())
	assert.Equal(t, "A3", seats[2].Label())
	assert.Equal(t, "B1", seats[3].Label())
	assert.Equal(t, "B3", seats[5].Label())
}

func TestGenerateSeatsCapacitySmallerThanRows(t *testing.T) {
	// 2 seats over 3 rows: only the last row gets the remainder
	seats := GenerateSeats(uuid.New(), 2, []string{"A", "B", "C"}, time.Now())

	require.Len(t, seats, 2)
	for _, seat := range seats {
		assert.Equal(t, "C", seat.Row)
	}
}

func TestGenerateSeatsInvalidInput(t *testing.T) {
	assert.Nil(t, GenerateSeats(uuid.New(), 0, []string{"A"}, time.Now()))
	assert.Nil(t, GenerateSeats(uuid.New(), 10, nil, time.Now()))
}
