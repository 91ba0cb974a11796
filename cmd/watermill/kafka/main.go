package main

import (
	"context"
	"log"
	"time"

	"github.com/Shopify/sarama"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
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

// Runs the booking flow over Kafka. Expects a broker reachable at
// KAFKA_BROKERS (localhost:9092 by default).
func main() {
	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}

	cfg := config.Load()
	logger := watermillAdapter.NewWatermillLoggerAdapter(appLogger)
	marshaler := kafka.DefaultMarshaler{}

	publisher, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:   cfg.KafkaBrokers,
		Marshaler: marshaler,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create Kafka publisher: %v", err)
	}
	defer publisher.Close()

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V1_0_0_0
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.ClientID = "bustrip"

	subscriber, err := kafka.NewSubscriber(kafka.SubscriberConfig{
		Brokers:               cfg.KafkaBrokers,
		Unmarshaler:           marshaler,
		ConsumerGroup:         "bustrip_booking",
		OverwriteSaramaConfig: saramaConfig,
		InitializeTopicDetails: &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
		},
	}, logger)
	if err != nil {
		log.Fatalf("failed to create Kafka subscriber: %v", err)
	}
	defer subscriber.Close()

	for _, topic := range []string{"CreatePassenger", "FindPassengers", "FindPassengers_response", "PassengerBooked"} {
		if err := subscriber.SubscribeInitialize(topic); err != nil {
			log.Fatalf("failed to initialize Kafka topic %q: %v", topic, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
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

	// Kafka round trips take a moment on a fresh consumer group.
	time.Sleep(10 * time.Second)

	booked, err := queryBus.Dispatch(ctx, application.NewFindPassengersQuery())
	if err != nil {
		appLogger.Error(ctx, "error dispatching passenger query", map[string]interface{}{"error": err})
		return
	}
	appLogger.Info(ctx, "passengers found", map[string]interface{}{"passengers": booked})
}
