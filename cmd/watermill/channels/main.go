package main

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/shopspring/decimal"

	"github.com/mmacedo-dev/bustrip/internal/booking/application"
	bookingDomain "github.com/mmacedo-dev/bustrip/internal/booking/domain"
	bookingInfra "github.com/mmacedo-dev/bustrip/internal/booking/infrastructure"
	stationDomain "github.com/mmacedo-dev/bustrip/internal/station/domain"
	stationInfra "github.com/mmacedo-dev/bustrip/internal/station/infrastructure"
	travelDomain "github.com/mmacedo-dev/bustrip/internal/travel/domain"
	travelInfra "github.com/mmacedo-dev/bustrip/internal/travel/infrastructure"
	userDomain "github.com/mmacedo-dev/bustrip/internal/user/domain"
	userInfra "github.com/mmacedo-dev/bustrip/internal/user/infrastructure"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
	watermillAdapter "github.com/mmacedo-dev/bustrip/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/mmacedo-dev/bustrip/pkg/infrastructure/zaplogger/adapter"
)

// Runs the booking flow over the in-memory GoChannel transport: one command
// to book a seat, one query to read the passenger list back.
func main() {
	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}

	logger := watermillAdapter.NewWatermillLoggerAdapter(appLogger)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stations := stationInfra.NewInMemoryBusStationRepository()
	travels := travelInfra.NewInMemoryTravelRepository(stations)
	passengers := bookingInfra.NewInMemoryPassengerRepository()
	users := userInfra.NewInMemoryUserRepository()

	origin, _ := stations.Save(ctx, stationDomain.BusStation{Name: "Terminal Tiete", City: "Sao Paulo", StateCode: "SP"})
	destination, _ := stations.Save(ctx, stationDomain.BusStation{Name: "Rodoviaria Novo Rio", City: "Rio de Janeiro", StateCode: "RJ"})

	departure := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	travel, err := travels.Save(ctx, travelDomain.NewTravel(
		departure, departure.Add(6*time.Hour), "conventional",
		decimal.NewFromFloat(129.90), 434.3, "6h 0m", origin.ID, destination.ID,
	))
	if err != nil {
		appLogger.Error(ctx, "error seeding travel", map[string]interface{}{"error": err})
		return
	}

	buyer, err := users.Save(ctx, userDomain.User{Name: "John Doe", Email: "john@example.com"})
	if err != nil {
		appLogger.Error(ctx, "error seeding user", map[string]interface{}{"error": err})
		return
	}

	commandBus := watermillAdapter.NewWatermillCommandBus[pkgDomain.Command[application.CreatePassengerData], application.CreatePassengerData](pubSub, pubSub, appLogger)
	queryBus := watermillAdapter.NewWatermillQueryBus[pkgDomain.Query[application.FindPassengersData], application.FindPassengersData, []bookingDomain.Passenger](pubSub, pubSub, appLogger)
	eventBus := watermillAdapter.NewWatermillEventBus[pkgDomain.Event[string], string](pubSub, appLogger)

	eventBus.RegisterHandler("PassengerBooked", application.NewPassengerBookedEventHandler(appLogger))
	commandBus.RegisterHandler("CreatePassenger", application.NewCreatePassengerHandler(passengers, travels, users, eventBus, appLogger))
	queryBus.RegisterHandler("FindPassengers", application.NewFindPassengersHandler(passengers))

	command := application.NewCreatePassengerCommand(application.CreatePassengerData{
		Name:          "John Doe",
		Document:      "12345678900",
		SeatNumber:    12,
		PaymentMethod: "pix",
		TravelID:      travel.ID,
		UserID:        buyer.ID,
	})

	if err := commandBus.Dispatch(ctx, command); err != nil {
		appLogger.Error(ctx, "error dispatching booking command", map[string]interface{}{"error": err})
		return
	}
	appLogger.Info(ctx, "booking command dispatched", nil)

	time.Sleep(1 * time.Second)

	booked, err := queryBus.Dispatch(ctx, application.NewFindPassengersQuery())
	if err != nil {
		appLogger.Error(ctx, "error dispatching passenger query", map[string]interface{}{"error": err})
		return
	}
	appLogger.Info(ctx, "passengers found", map[string]interface{}{"passengers": booked})
}
