package main

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/mmacedo-dev/bustrip/internal/booking/application"
	bookingDomain "github.com/mmacedo-dev/bustrip/internal/booking/domain"
	bookingInfra "github.com/mmacedo-dev/bustrip/internal/booking/infrastructure"
	"github.com/mmacedo-dev/bustrip/internal/config"
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

// Runs the booking flow over Redis Streams. Expects a server reachable at
// REDIS_ADDR (localhost:6379 by default).
func main() {
	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}

	cfg := config.Load()
	logger := watermillAdapter.NewWatermillLoggerAdapter(appLogger)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: redisClient,
	}, logger)
	if err != nil {
		appLogger.Error(ctx, "error creating publisher", map[string]interface{}{"error": err})
		return
	}
	defer publisher.Close()

	subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        redisClient,
		ConsumerGroup: "bustrip_booking",
		Consumer:      "bustrip_demo",
	}, logger)
	if err != nil {
		appLogger.Error(ctx, "error creating subscriber", map[string]interface{}{"error": err})
		return
	}
	defer subscriber.Close()

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

	commandBus := watermillAdapter.NewWatermillCommandBus[pkgDomain.Command[application.CreatePassengerData], application.CreatePassengerData](publisher, subscriber, appLogger)
	queryBus := watermillAdapter.NewWatermillQueryBus[pkgDomain.Query[application.FindPassengersData], application.FindPassengersData, []bookingDomain.Passenger](publisher, subscriber, appLogger)
	eventBus := watermillAdapter.NewWatermillEventBus[pkgDomain.Event[string], string](publisher, appLogger)

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

	time.Sleep(3 * time.Second)

	booked, err := queryBus.Dispatch(ctx, application.NewFindPassengersQuery())
	if err != nil {
		appLogger.Error(ctx, "error dispatching passenger query", map[string]interface{}{"error": err})
		return
	}
	appLogger.Info(ctx, "passengers found", map[string]interface{}{"passengers": booked})
}
