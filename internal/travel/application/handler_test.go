package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stationDomain "github.com/mmacedo-dev/bustrip/internal/station/domain"
	stationInfra "github.com/mmacedo-dev/bustrip/internal/station/infrastructure"
	"github.com/mmacedo-dev/bustrip/internal/travel/application"
	"github.com/mmacedo-dev/bustrip/internal/travel/domain"
	"github.com/mmacedo-dev/bustrip/internal/travel/infrastructure"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
	pkgInfra "github.com/mmacedo-dev/bustrip/pkg/infrastructure"
)

type stubPlanner struct {
	route domain.Route
	err   error
}

func (p stubPlanner) PlanRoute(context.Context, string, string, time.Time) (domain.Route, error) {
	return p.route, p.err
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, map[string]interface{})  {}
func (nopLogger) Debug(context.Context, string, map[string]interface{}) {}
func (nopLogger) Error(context.Context, string, map[string]interface{}) {}
func (nopLogger) Trace(context.Context, string, map[string]interface{}) {}

type travelFixture struct {
	travels   *infrastructure.InMemoryTravelRepository
	stationID map[string]int64
}

func newTravelFixture(t *testing.T, planner domain.RoutePlanner) (*travelFixture, func(context.Context, pkgDomain.Command[application.CreateTravelData]) error) {
	t.Helper()

	stations := stationInfra.NewInMemoryBusStationRepository()
	travels := infrastructure.NewInMemoryTravelRepository(stations)
	eventBus := pkgInfra.NewSimpleEventBus[pkgDomain.Event[string], string](nopLogger{})
	handler := application.NewCreateTravelHandler(travels, stations, planner, eventBus, nopLogger{})

	fixture := &travelFixture{travels: travels, stationID: make(map[string]int64)}
	for _, seed := range []struct{ name, city string }{
		{"Terminal Tiete", "Sao Paulo"},
		{"Rodoviaria Novo Rio", "Rio de Janeiro"},
	} {
		saved, err := stations.Save(context.Background(), stationDomain.BusStation{
			Name: seed.name, City: seed.city, StateCode: "SP",
		})
		require.NoError(t, err)
		fixture.stationID[seed.city] = saved.ID
	}

	return fixture, handler.Handle
}

func TestCreateTravel_Success(t *testing.T) {
	departure := time.Now().Add(48 * time.Hour)
	fixture, handle := newTravelFixture(t, stubPlanner{
		route: domain.Route{DistanceKm: 434.3, Duration: 6*time.Hour + 15*time.Minute},
	})

	err := handle(context.Background(), application.NewCreateTravelCommand(application.CreateTravelData{
		DepartureTime:      departure,
		SeatClass:          "executive",
		Price:              decimal.NewFromFloat(129.90),
		DepartureStationID: fixture.stationID["Sao Paulo"],
		ArrivalStationID:   fixture.stationID["Rio de Janeiro"],
	}))
	require.NoError(t, err)

	travels, err := fixture.travels.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, travels, 1)

	travel := travels[0]
	assert.Len(t, travel.AvailableSeats, 46)
	assert.Equal(t, departure.Add(6*time.Hour+15*time.Minute), travel.ArrivalTime)
	assert.Equal(t, "6h 15m", travel.Duration)
	assert.Equal(t, 434.3, travel.DistanceKm)
}

func TestCreateTravel_SameStation(t *testing.T) {
	fixture, handle := newTravelFixture(t, stubPlanner{})

	err := handle(context.Background(), application.NewCreateTravelCommand(application.CreateTravelData{
		DepartureTime:      time.Now().Add(48 * time.Hour),
		Price:              decimal.NewFromInt(100),
		DepartureStationID: fixture.stationID["Sao Paulo"],
		ArrivalStationID:   fixture.stationID["Sao Paulo"],
	}))

	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindConflict))
	assert.ErrorContains(t, err, "cannot be the same as the departure station")
}

func TestCreateTravel_UnknownStation(t *testing.T) {
	fixture, handle := newTravelFixture(t, stubPlanner{})

	err := handle(context.Background(), application.NewCreateTravelCommand(application.CreateTravelData{
		DepartureTime:      time.Now().Add(48 * time.Hour),
		Price:              decimal.NewFromInt(100),
		DepartureStationID: fixture.stationID["Sao Paulo"],
		ArrivalStationID:   999,
	}))

	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindNotFound))
}

func TestCreateTravel_PastDeparture(t *testing.T) {
	fixture, handle := newTravelFixture(t, stubPlanner{})

	err := handle(context.Background(), application.NewCreateTravelCommand(application.CreateTravelData{
		DepartureTime:      time.Now().Add(-time.Minute),
		Price:              decimal.NewFromInt(100),
		DepartureStationID: fixture.stationID["Sao Paulo"],
		ArrivalStationID:   fixture.stationID["Rio de Janeiro"],
	}))

	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindBadRequest))
	assert.ErrorContains(t, err, "departure time must be in the future")
}

func TestCreateTravel_NoRoute(t *testing.T) {
	fixture, handle := newTravelFixture(t, stubPlanner{err: domain.ErrNoRoute})

	err := handle(context.Background(), application.NewCreateTravelCommand(application.CreateTravelData{
		DepartureTime:      time.Now().Add(48 * time.Hour),
		Price:              decimal.NewFromInt(100),
		DepartureStationID: fixture.stationID["Sao Paulo"],
		ArrivalStationID:   fixture.stationID["Rio de Janeiro"],
	}))

	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindBadRequest))
	assert.ErrorContains(t, err, "no route between")
}

func TestDeleteTravel_NotFound(t *testing.T) {
	stations := stationInfra.NewInMemoryBusStationRepository()
	travels := infrastructure.NewInMemoryTravelRepository(stations)
	handler := application.NewDeleteTravelHandler(travels, nopLogger{})

	err := handler.Handle(context.Background(), application.NewDeleteTravelCommand(application.DeleteTravelData{ID: 7}))

	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindNotFound))
}
