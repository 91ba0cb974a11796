package application_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmacedo-dev/bustrip/internal/station/application"
	"github.com/mmacedo-dev/bustrip/internal/station/domain"
	"github.com/mmacedo-dev/bustrip/internal/station/infrastructure"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
	pkgInfra "github.com/mmacedo-dev/bustrip/pkg/infrastructure"
)

type stubLocator struct {
	place domain.Place
	err   error
}

func (l stubLocator) Locate(context.Context, string, string) (domain.Place, error) {
	return l.place, l.err
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, map[string]interface{})  {}
func (nopLogger) Debug(context.Context, string, map[string]interface{}) {}
func (nopLogger) Error(context.Context, string, map[string]interface{}) {}
func (nopLogger) Trace(context.Context, string, map[string]interface{}) {}

func newStationFixture(t *testing.T, locator domain.PlaceLocator) (*infrastructure.InMemoryBusStationRepository, func(context.Context, pkgDomain.Command[application.CreateBusStationData]) error) {
	t.Helper()

	stations := infrastructure.NewInMemoryBusStationRepository()
	eventBus := pkgInfra.NewSimpleEventBus[pkgDomain.Event[string], string](nopLogger{})
	handler := application.NewCreateBusStationHandler(stations, locator, eventBus, nopLogger{})
	return stations, handler.Handle
}

func createCommand() pkgDomain.Command[application.CreateBusStationData] {
	return application.NewCreateBusStationCommand(application.CreateBusStationData{
		Name:      "Terminal Tiete",
		City:      "Sao Paulo",
		StateCode: "SP",
	})
}

func TestCreateBusStation_UsesPlaceDisplayName(t *testing.T) {
	stations, create := newStationFixture(t, stubLocator{
		place: domain.Place{DisplayName: "Terminal Rodoviario Tiete", Types: []string{"bus_station"}},
	})

	require.NoError(t, create(context.Background(), createCommand()))

	saved, err := stations.FindByName(context.Background(), "Terminal Rodoviario Tiete")
	require.NoError(t, err)
	assert.Equal(t, "Sao Paulo", saved.City)
	assert.Equal(t, "SP", saved.StateCode)
}

func TestCreateBusStation_PlaceNotFound(t *testing.T) {
	// The locator may wrap its sentinel; classification must still hold.
	_, create := newStationFixture(t, stubLocator{
		err: fmt.Errorf("searching places: %w", domain.ErrPlaceNotFound),
	})

	err := create(context.Background(), createCommand())

	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindBadRequest))
	assert.ErrorContains(t, err, "no bus station found named")
}

func TestCreateBusStation_NotABusStation(t *testing.T) {
	_, create := newStationFixture(t, stubLocator{
		place: domain.Place{DisplayName: "Terminal Tiete", Types: []string{"restaurant"}},
	})

	err := create(context.Background(), createCommand())

	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindBadRequest))
	assert.ErrorContains(t, err, "not a bus station")
}

func TestCreateBusStation_DuplicateName(t *testing.T) {
	stations, create := newStationFixture(t, stubLocator{
		place: domain.Place{DisplayName: "Terminal Tiete", Types: []string{"bus_station"}},
	})

	_, err := stations.Save(context.Background(), domain.BusStation{Name: "Terminal Tiete", City: "Sao Paulo", StateCode: "SP"})
	require.NoError(t, err)

	err = create(context.Background(), createCommand())

	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindConflict))
	assert.ErrorContains(t, err, "already registered")
}
