package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmacedo-dev/bustrip/internal/monitoring"
	stationDomain "github.com/mmacedo-dev/bustrip/internal/station/domain"
	"github.com/mmacedo-dev/bustrip/internal/travel/domain"
	pkgApp "github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
)

type createTravelHandler struct {
	travels  domain.TravelRepository
	stations stationDomain.BusStationRepository
	planner  domain.RoutePlanner
	eventBus pkgApp.EventBus[pkgDomain.Event[string], string]
	logger   pkgApp.AppLogger
}

func NewCreateTravelHandler(travels domain.TravelRepository, stations stationDomain.BusStationRepository, planner domain.RoutePlanner, eventBus pkgApp.EventBus[pkgDomain.Event[string], string], logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[CreateTravelData], CreateTravelData] {
	return &createTravelHandler{
		travels:  travels,
		stations: stations,
		planner:  planner,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (h *createTravelHandler) Handle(ctx context.Context, command pkgDomain.Command[CreateTravelData]) error {
	data := command.Payload()

	if data.DepartureStationID == data.ArrivalStationID {
		return pkgDomain.NewConflictError("the arrival station cannot be the same as the departure station")
	}

	departureStation, err := h.stations.FindByID(ctx, data.DepartureStationID)
	if err != nil {
		return err
	}

	arrivalStation, err := h.stations.FindByID(ctx, data.ArrivalStationID)
	if err != nil {
		return err
	}

	if !data.DepartureTime.After(time.Now()) {
		return pkgDomain.NewBadRequestError("the departure time must be in the future")
	}

	route, err := h.planner.PlanRoute(ctx, departureStation.Name, arrivalStation.Name, data.DepartureTime)
	if errors.Is(err, domain.ErrNoRoute) {
		return pkgDomain.NewBadRequestError(
			fmt.Sprintf("no route between %s and %s", departureStation.Name, arrivalStation.Name))
	}
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "error planning route", err, map[string]interface{}{
			"origin":      departureStation.Name,
			"destination": arrivalStation.Name,
		})
		return err
	}

	travel := domain.NewTravel(
		data.DepartureTime,
		data.DepartureTime.Add(route.Duration),
		data.SeatClass,
		data.Price,
		route.DistanceKm,
		domain.FormatDuration(route.Duration),
		data.DepartureStationID,
		data.ArrivalStationID,
	)

	saved, err := h.travels.Save(ctx, travel)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "error saving travel", err, map[string]interface{}{"travel": travel})
		return err
	}

	event := NewTravelCreatedEvent(fmt.Sprintf("travel %d scheduled from %s to %s", saved.ID, departureStation.Name, arrivalStation.Name))
	if err := h.eventBus.Publish(ctx, event); err != nil {
		return err
	}

	h.logger.Info(ctx, "travel scheduled", map[string]interface{}{
		"id":        saved.ID,
		"departure": saved.DepartureTime,
		"arrival":   saved.ArrivalTime,
	})
	return nil
}

type deleteTravelHandler struct {
	travels domain.TravelRepository
	logger  pkgApp.AppLogger
}

func NewDeleteTravelHandler(travels domain.TravelRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[DeleteTravelData], DeleteTravelData] {
	return &deleteTravelHandler{travels: travels, logger: logger}
}

func (h *deleteTravelHandler) Handle(ctx context.Context, command pkgDomain.Command[DeleteTravelData]) error {
	data := command.Payload()

	if _, err := h.travels.FindByID(ctx, data.ID); err != nil {
		return err
	}

	if err := h.travels.Delete(ctx, data.ID); err != nil {
		pkgApp.LogError(ctx, h.logger, "error deleting travel", err, map[string]interface{}{"id": data.ID})
		return err
	}

	h.logger.Info(ctx, "travel deleted", map[string]interface{}{"id": data.ID})
	return nil
}

type findTravelsHandler struct {
	travels domain.TravelRepository
}

func NewFindTravelsHandler(travels domain.TravelRepository) pkgApp.QueryHandler[pkgDomain.Query[FindTravelsData], FindTravelsData, []domain.Travel] {
	return &findTravelsHandler{travels: travels}
}

func (h *findTravelsHandler) Handle(ctx context.Context, _ pkgDomain.Query[FindTravelsData]) ([]domain.Travel, error) {
	return h.travels.FindAll(ctx)
}

type findTravelByIDHandler struct {
	travels domain.TravelRepository
}

func NewFindTravelByIDHandler(travels domain.TravelRepository) pkgApp.QueryHandler[pkgDomain.Query[FindTravelByIDData], FindTravelByIDData, domain.Travel] {
	return &findTravelByIDHandler{travels: travels}
}

func (h *findTravelByIDHandler) Handle(ctx context.Context, query pkgDomain.Query[FindTravelByIDData]) (domain.Travel, error) {
	return h.travels.FindByID(ctx, query.Payload().ID)
}

type searchTravelsHandler struct {
	travels domain.TravelRepository
}

func NewSearchTravelsHandler(travels domain.TravelRepository) pkgApp.QueryHandler[pkgDomain.Query[SearchTravelsData], SearchTravelsData, []domain.Travel] {
	return &searchTravelsHandler{travels: travels}
}

func (h *searchTravelsHandler) Handle(ctx context.Context, query pkgDomain.Query[SearchTravelsData]) ([]domain.Travel, error) {
	data := query.Payload()
	return h.travels.Search(ctx, domain.TravelSearchFilter{
		OriginCity:      data.OriginCity,
		DestinationCity: data.DestinationCity,
		DepartureDate:   data.DepartureDate,
	})
}

type travelCreatedEventHandler struct {
	logger pkgApp.AppLogger
}

func NewTravelCreatedEventHandler(logger pkgApp.AppLogger) pkgApp.EventHandler[pkgDomain.Event[string], string] {
	return &travelCreatedEventHandler{logger: logger}
}

func (h *travelCreatedEventHandler) Handle(ctx context.Context, event pkgDomain.Event[string]) error {
	monitoring.TravelsCreated.Inc()
	h.logger.Info(ctx, "event received", map[string]interface{}{
		"event_name": event.EventName(),
		"payload":    event.Payload(),
	})
	return nil
}
