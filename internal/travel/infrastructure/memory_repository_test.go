package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stationDomain "github.com/mmacedo-dev/bustrip/internal/station/domain"
	stationInfra "github.com/mmacedo-dev/bustrip/internal/station/infrastructure"
	"github.com/mmacedo-dev/bustrip/internal/travel/domain"
)

func TestSearch_DepartureDateMatchesWholeDay(t *testing.T) {
	ctx := context.Background()
	stations := stationInfra.NewInMemoryBusStationRepository()
	travels := NewInMemoryTravelRepository(stations)

	origin, err := stations.Save(ctx, stationDomain.BusStation{Name: "Terminal Tiete", City: "Sao Paulo", StateCode: "SP"})
	require.NoError(t, err)
	destination, err := stations.Save(ctx, stationDomain.BusStation{Name: "Rodoviaria Novo Rio", City: "Rio de Janeiro", StateCode: "RJ"})
	require.NoError(t, err)

	day := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	for _, departure := range []time.Time{
		day.Add(-time.Hour),     // day before
		day,                     // midnight
		day.Add(23 * time.Hour), // late evening
		day.Add(24 * time.Hour), // next day
	} {
		_, err := travels.Save(ctx, domain.NewTravel(
			departure, departure.Add(6*time.Hour), "conventional",
			decimal.NewFromInt(100), 430, "6h 0m", origin.ID, destination.ID,
		))
		require.NoError(t, err)
	}

	// A filter in the middle of the day selects the calendar day, not a
	// 24-hour window around the instant.
	matched, err := travels.Search(ctx, domain.TravelSearchFilter{
		DepartureDate: day.Add(15*time.Hour + 30*time.Minute),
	})
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, day, matched[0].DepartureTime)
	assert.Equal(t, day.Add(23*time.Hour), matched[1].DepartureTime)
}

func TestDayStart(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	instant := time.Date(2026, time.September, 10, 15, 30, 45, 0, loc)

	start := domain.DayStart(instant)

	assert.Equal(t, time.Date(2026, time.September, 10, 0, 0, 0, 0, loc), start)
}
