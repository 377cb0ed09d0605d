package response

import (
	"testing"
	"time"

	"cinema-reservations/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatsToMapResponseGroupsByRow(t *testing.T) {
	showtimeID := uuid.New()
	seats := entity.GenerateSeats(showtimeID, 6, []string{"A", "B"}, time.Now())
	seats[1].IsReserved = true

	resp := SeatsToMapResponse(showtimeID.String(), seats)

	require.Len(t, resp.Rows, 2)
	require.Len(t, resp.Rows["A"], 3)
	require.Len(t, resp.Rows["B"], 3)

	assert.Equal(t, "A1", resp.Rows["A"][0].Label)
	assert.False(t, resp.Rows["A"][0].IsReserved)
	assert.True(t, resp.Rows["A"][1].IsReserved)
	assert.Equal(t, 1, resp.Rows["B"][0].Number)
	assert.Equal(t, 3, resp.Rows["B"][2].Number)
}

func TestSeatsToMapResponseEmpty(t *testing.T) {
	resp := SeatsToMapResponse(uuid.New().String(), nil)
	assert.Empty(t, resp.Rows)
}
