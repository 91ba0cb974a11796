package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
)

func newTestTravel() Travel {
	departure := time.Now().Add(7 * 24 * time.Hour)
	return NewTravel(departure, departure.Add(6*time.Hour), "executive",
		decimal.NewFromInt(120), 430, "6h 0m", 1, 2)
}

func TestNewTravel_FullInventory(t *testing.T) {
	travel := newTestTravel()

	require.Len(t, travel.AvailableSeats, 46)
	assert.Equal(t, FirstSeat, travel.AvailableSeats[0])
	assert.Equal(t, LastSeat, travel.AvailableSeats[45])
	assert.True(t, isSortedUnique(travel.AvailableSeats))
}

func TestReserveSeat_RemovesExactlyThatSeat(t *testing.T) {
	travel := newTestTravel()

	require.NoError(t, travel.ReserveSeat(12))

	assert.Len(t, travel.AvailableSeats, 45)
	assert.False(t, travel.SeatAvailable(12))
	assert.True(t, isSortedUnique(travel.AvailableSeats))
}

func TestReserveSeat_TakenSeatFails(t *testing.T) {
	travel := newTestTravel()
	require.NoError(t, travel.ReserveSeat(1))

	err := travel.ReserveSeat(1)

	require.Error(t, err)
	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindBadRequest))
	assert.Contains(t, err.Error(), "seat 1 is not available")
	// The message enumerates the remaining free seats in ascending order.
	assert.Contains(t, err.Error(), "free seats: [2 3 4")
}

func TestReserveSeat_OutOfRangeFails(t *testing.T) {
	travel := newTestTravel()

	assert.Error(t, travel.ReserveSeat(0))
	assert.Error(t, travel.ReserveSeat(47))
	assert.Len(t, travel.AvailableSeats, 46)
}

func TestReleaseSeat_ReturnsSeatOnce(t *testing.T) {
	travel := newTestTravel()
	require.NoError(t, travel.ReserveSeat(7))

	travel.ReleaseSeat(7)

	assert.True(t, travel.SeatAvailable(7))
	assert.Len(t, travel.AvailableSeats, 46)
	assert.True(t, isSortedUnique(travel.AvailableSeats))
}

func TestReleaseSeat_IsIdempotent(t *testing.T) {
	travel := newTestTravel()
	require.NoError(t, travel.ReserveSeat(7))

	travel.ReleaseSeat(7)
	travel.ReleaseSeat(7)

	assert.Len(t, travel.AvailableSeats, 46)
	assert.True(t, isSortedUnique(travel.AvailableSeats))
}

func TestReleaseSeat_IgnoresOutOfRange(t *testing.T) {
	travel := newTestTravel()

	travel.ReleaseSeat(0)
	travel.ReleaseSeat(47)

	assert.Len(t, travel.AvailableSeats, 46)
}

func TestReleaseSeat_KeepsAscendingOrder(t *testing.T) {
	travel := newTestTravel()
	for _, seat := range []int{3, 40, 12} {
		require.NoError(t, travel.ReserveSeat(seat))
	}

	travel.ReleaseSeat(40)
	travel.ReleaseSeat(3)
	travel.ReleaseSeat(12)

	assert.Len(t, travel.AvailableSeats, 46)
	assert.True(t, isSortedUnique(travel.AvailableSeats))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{6 * time.Hour, "6h 0m"},
		{5*time.Hour + 30*time.Minute, "5h 30m"},
		{45 * time.Minute, "0h 45m"},
		{26*time.Hour + 5*time.Minute, "26h 5m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d))
	}
}

func isSortedUnique(seats Seats) bool {
	for i := 1; i < len(seats); i++ {
		if seats[i] <= seats[i-1] {
			return false
		}
	}
	return true
}
