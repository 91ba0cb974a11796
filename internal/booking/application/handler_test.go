package application_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmacedo-dev/bustrip/internal/booking/application"
	bookingDomain "github.com/mmacedo-dev/bustrip/internal/booking/domain"
	"github.com/mmacedo-dev/bustrip/internal/booking/infrastructure"
	stationInfra "github.com/mmacedo-dev/bustrip/internal/station/infrastructure"
	travelDomain "github.com/mmacedo-dev/bustrip/internal/travel/domain"
	travelInfra "github.com/mmacedo-dev/bustrip/internal/travel/infrastructure"
	userDomain "github.com/mmacedo-dev/bustrip/internal/user/domain"
	userInfra "github.com/mmacedo-dev/bustrip/internal/user/infrastructure"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
	pkgInfra "github.com/mmacedo-dev/bustrip/pkg/infrastructure"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, map[string]interface{})  {}
func (nopLogger) Debug(context.Context, string, map[string]interface{}) {}
func (nopLogger) Error(context.Context, string, map[string]interface{}) {}
func (nopLogger) Trace(context.Context, string, map[string]interface{}) {}

type bookingFixture struct {
	passengers *infrastructure.InMemoryPassengerRepository
	travels    *travelInfra.InMemoryTravelRepository
	users      *userInfra.InMemoryUserRepository
	travelID   int64
	userID     int64
	book       func(context.Context, pkgDomain.Command[application.CreatePassengerData]) error
	cancel     func(context.Context, pkgDomain.Command[application.CancelBookingData]) error
}

func newBookingFixture(t *testing.T, departure time.Time) *bookingFixture {
	t.Helper()

	stations := stationInfra.NewInMemoryBusStationRepository()
	travels := travelInfra.NewInMemoryTravelRepository(stations)
	passengers := infrastructure.NewInMemoryPassengerRepository()
	users := userInfra.NewInMemoryUserRepository()
	eventBus := pkgInfra.NewSimpleEventBus[pkgDomain.Event[string], string](nopLogger{})

	travel, err := travels.Save(context.Background(), travelDomain.NewTravel(
		departure, departure.Add(6*time.Hour), "conventional",
		decimal.NewFromInt(100), 430, "6h 0m", 1, 2,
	))
	require.NoError(t, err)

	user, err := users.Save(context.Background(), userDomain.User{
		Name:  "Maria Souza",
		Email: "maria@example.com",
	})
	require.NoError(t, err)

	bookHandler := application.NewCreatePassengerHandler(passengers, travels, users, eventBus, nopLogger{})
	cancelHandler := application.NewCancelBookingHandler(passengers, travels, eventBus, nopLogger{})

	return &bookingFixture{
		passengers: passengers,
		travels:    travels,
		users:      users,
		travelID:   travel.ID,
		userID:     user.ID,
		book:       bookHandler.Handle,
		cancel:     cancelHandler.Handle,
	}
}

func (f *bookingFixture) bookSeat(seat int) error {
	return f.book(context.Background(), application.NewCreatePassengerCommand(application.CreatePassengerData{
		Name:          "Joao Lima",
		Document:      "12345678900",
		SeatNumber:    seat,
		PaymentMethod: "pix",
		TravelID:      f.travelID,
		UserID:        f.userID,
	}))
}

func TestCreatePassenger_ReservesSeat(t *testing.T) {
	fixture := newBookingFixture(t, time.Now().Add(48*time.Hour))

	require.NoError(t, fixture.bookSeat(1))

	travel, err := fixture.travels.FindByID(context.Background(), fixture.travelID)
	require.NoError(t, err)
	assert.Len(t, travel.AvailableSeats, 45)
	assert.False(t, travel.SeatAvailable(1))

	passengers, err := fixture.passengers.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, passengers, 1)
	assert.Equal(t, 1, passengers[0].SeatNumber)
}

func TestCreatePassenger_SeatTakenListsFreeSeats(t *testing.T) {
	fixture := newBookingFixture(t, time.Now().Add(48*time.Hour))

	require.NoError(t, fixture.bookSeat(1))
	err := fixture.bookSeat(1)

	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindBadRequest))
	assert.ErrorContains(t, err, "seat 1 is not available")
	assert.ErrorContains(t, err, "free seats: [2 3 4")

	// The failed attempt must not create a passenger record.
	passengers, findErr := fixture.passengers.FindAll(context.Background())
	require.NoError(t, findErr)
	assert.Len(t, passengers, 1)
}

// Concurrent bookings race for one seat; the repository serializes them so
// exactly one wins.
func TestCreatePassenger_ConcurrentSameSeat(t *testing.T) {
	fixture := newBookingFixture(t, time.Now().Add(48*time.Hour))

	const attempts = 20
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- fixture.bookSeat(7)
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindBadRequest))
	}
	assert.Equal(t, 1, succeeded)

	travel, err := fixture.travels.FindByID(context.Background(), fixture.travelID)
	require.NoError(t, err)
	assert.Len(t, travel.AvailableSeats, 45)
	assert.False(t, travel.SeatAvailable(7))

	passengers, err := fixture.passengers.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, passengers, 1)
}

type failingPassengerRepository struct {
	bookingDomain.PassengerRepository
}

func (failingPassengerRepository) Save(context.Context, bookingDomain.Passenger) (bookingDomain.Passenger, error) {
	return bookingDomain.Passenger{}, errors.New("insert failed")
}

func TestCreatePassenger_FailedSaveReleasesSeat(t *testing.T) {
	fixture := newBookingFixture(t, time.Now().Add(48*time.Hour))
	eventBus := pkgInfra.NewSimpleEventBus[pkgDomain.Event[string], string](nopLogger{})
	handler := application.NewCreatePassengerHandler(
		failingPassengerRepository{PassengerRepository: fixture.passengers},
		fixture.travels, fixture.users, eventBus, nopLogger{},
	)

	err := handler.Handle(context.Background(), application.NewCreatePassengerCommand(application.CreatePassengerData{
		Name:       "Joao Lima",
		Document:   "12345678900",
		SeatNumber: 5,
		TravelID:   fixture.travelID,
		UserID:     fixture.userID,
	}))
	assert.ErrorContains(t, err, "insert failed")

	// The reserved seat must come back when the passenger write fails.
	travel, findErr := fixture.travels.FindByID(context.Background(), fixture.travelID)
	require.NoError(t, findErr)
	assert.Len(t, travel.AvailableSeats, 46)
	assert.True(t, travel.SeatAvailable(5))

	passengers, findErr := fixture.passengers.FindAll(context.Background())
	require.NoError(t, findErr)
	assert.Empty(t, passengers)
}

func TestCreatePassenger_UnknownTravel(t *testing.T) {
	fixture := newBookingFixture(t, time.Now().Add(48*time.Hour))

	err := fixture.book(context.Background(), application.NewCreatePassengerCommand(application.CreatePassengerData{
		Name:       "Joao Lima",
		Document:   "12345678900",
		SeatNumber: 1,
		TravelID:   999,
		UserID:     fixture.userID,
	}))

	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindNotFound))
}

func TestCreatePassenger_UnknownUser(t *testing.T) {
	fixture := newBookingFixture(t, time.Now().Add(48*time.Hour))

	err := fixture.book(context.Background(), application.NewCreatePassengerCommand(application.CreatePassengerData{
		Name:       "Joao Lima",
		Document:   "12345678900",
		SeatNumber: 1,
		TravelID:   fixture.travelID,
		UserID:     999,
	}))

	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindNotFound))
}

func TestCancelBooking_ReleasesSeat(t *testing.T) {
	fixture := newBookingFixture(t, time.Now().Add(48*time.Hour))

	require.NoError(t, fixture.bookSeat(1))
	passengers, err := fixture.passengers.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, passengers, 1)

	err = fixture.cancel(context.Background(), application.NewCancelBookingCommand(application.CancelBookingData{ID: passengers[0].ID}))
	require.NoError(t, err)

	travel, err := fixture.travels.FindByID(context.Background(), fixture.travelID)
	require.NoError(t, err)
	assert.Len(t, travel.AvailableSeats, 46)
	assert.True(t, travel.SeatAvailable(1))

	_, err = fixture.passengers.FindByID(context.Background(), passengers[0].ID)
	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindNotFound))
}

func TestCancelBooking_TooCloseToDeparture(t *testing.T) {
	fixture := newBookingFixture(t, time.Now().Add(30*time.Minute))

	require.NoError(t, fixture.bookSeat(1))
	passengers, err := fixture.passengers.FindAll(context.Background())
	require.NoError(t, err)

	err = fixture.cancel(context.Background(), application.NewCancelBookingCommand(application.CancelBookingData{ID: passengers[0].ID}))

	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindBadRequest))
	assert.ErrorContains(t, err, "1 hour before departure")

	// The seat stays reserved and the passenger record stays in place.
	travel, findErr := fixture.travels.FindByID(context.Background(), fixture.travelID)
	require.NoError(t, findErr)
	assert.False(t, travel.SeatAvailable(1))
}

func TestCancelBooking_UnknownPassenger(t *testing.T) {
	fixture := newBookingFixture(t, time.Now().Add(48*time.Hour))

	err := fixture.cancel(context.Background(), application.NewCancelBookingCommand(application.CancelBookingData{ID: 42}))

	assert.True(t, pkgDomain.IsKind(err, pkgDomain.KindNotFound))
}

// The full booking cycle: reserve a seat, fail to double-book it, cancel,
// and see the seat return to the pool.
func TestBookingLifecycle(t *testing.T) {
	fixture := newBookingFixture(t, time.Now().Add(48*time.Hour))

	require.NoError(t, fixture.bookSeat(1))

	err := fixture.bookSeat(1)
	assert.ErrorContains(t, err, "seat 1 is not available")

	passengers, err := fixture.passengers.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, passengers, 1)

	require.NoError(t, fixture.cancel(context.Background(), application.NewCancelBookingCommand(application.CancelBookingData{ID: passengers[0].ID})))

	require.NoError(t, fixture.bookSeat(1))
	travel, err := fixture.travels.FindByID(context.Background(), fixture.travelID)
	require.NoError(t, err)
	assert.False(t, travel.SeatAvailable(1))
}
