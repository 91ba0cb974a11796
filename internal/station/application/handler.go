package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmacedo-dev/bustrip/internal/station/domain"
	pkgApp "github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
)

type createBusStationHandler struct {
	stations domain.BusStationRepository
	locator  domain.PlaceLocator
	eventBus pkgApp.EventBus[pkgDomain.Event[string], string]
	logger   pkgApp.AppLogger
}

func NewCreateBusStationHandler(stations domain.BusStationRepository, locator domain.PlaceLocator, eventBus pkgApp.EventBus[pkgDomain.Event[string], string], logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[CreateBusStationData], CreateBusStationData] {
	return &createBusStationHandler{
		stations: stations,
		locator:  locator,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (h *createBusStationHandler) Handle(ctx context.Context, command pkgDomain.Command[CreateBusStationData]) error {
	data := command.Payload()

	_, err := h.stations.FindByName(ctx, data.Name)
	switch {
	case err == nil:
		return pkgDomain.NewConflictError("this bus station is already registered")
	case !pkgDomain.IsKind(err, pkgDomain.KindNotFound):
		return err
	}

	place, err := h.locator.Locate(ctx, data.Name, data.City)
	if errors.Is(err, domain.ErrPlaceNotFound) {
		return pkgDomain.NewBadRequestError(fmt.Sprintf("no bus station found named %q", data.Name))
	}
	if err != nil {
		return err
	}
	if !place.IsBusStation() {
		return pkgDomain.NewBadRequestError("the searched place is not a bus station")
	}

	station := domain.BusStation{
		Name:      place.DisplayName,
		City:      data.City,
		StateCode: data.StateCode,
	}

	saved, err := h.stations.Save(ctx, station)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "error saving bus station", err, map[string]interface{}{"station": station})
		return err
	}

	event := NewBusStationCreatedEvent(fmt.Sprintf("bus station %s registered in %s/%s", saved.Name, saved.City, saved.StateCode))
	if err := h.eventBus.Publish(ctx, event); err != nil {
		return err
	}

	h.logger.Info(ctx, "bus station registered", map[string]interface{}{"id": saved.ID, "name": saved.Name})
	return nil
}

type deleteBusStationHandler struct {
	stations domain.BusStationRepository
	logger   pkgApp.AppLogger
}

func NewDeleteBusStationHandler(stations domain.BusStationRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[DeleteBusStationData], DeleteBusStationData] {
	return &deleteBusStationHandler{stations: stations, logger: logger}
}

func (h *deleteBusStationHandler) Handle(ctx context.Context, command pkgDomain.Command[DeleteBusStationData]) error {
	data := command.Payload()

	if _, err := h.stations.FindByID(ctx, data.ID); err != nil {
		return err
	}

	if err := h.stations.Delete(ctx, data.ID); err != nil {
		pkgApp.LogError(ctx, h.logger, "error deleting bus station", err, map[string]interface{}{"id": data.ID})
		return err
	}

	h.logger.Info(ctx, "bus station deleted", map[string]interface{}{"id": data.ID})
	return nil
}

type findBusStationsHandler struct {
	stations domain.BusStationRepository
}

func NewFindBusStationsHandler(stations domain.BusStationRepository) pkgApp.QueryHandler[pkgDomain.Query[FindBusStationsData], FindBusStationsData, []domain.BusStation] {
	return &findBusStationsHandler{stations: stations}
}

func (h *findBusStationsHandler) Handle(ctx context.Context, _ pkgDomain.Query[FindBusStationsData]) ([]domain.BusStation, error) {
	return h.stations.FindAll(ctx)
}

type findBusStationByIDHandler struct {
	stations domain.BusStationRepository
}

func NewFindBusStationByIDHandler(stations domain.BusStationRepository) pkgApp.QueryHandler[pkgDomain.Query[FindBusStationByIDData], FindBusStationByIDData, domain.BusStation] {
	return &findBusStationByIDHandler{stations: stations}
}

func (h *findBusStationByIDHandler) Handle(ctx context.Context, query pkgDomain.Query[FindBusStationByIDData]) (domain.BusStation, error) {
	return h.stations.FindByID(ctx, query.Payload().ID)
}

type findBusStationsByCityHandler struct {
	stations domain.BusStationRepository
}

func NewFindBusStationsByCityHandler(stations domain.BusStationRepository) pkgApp.QueryHandler[pkgDomain.Query[FindBusStationsByCityData], FindBusStationsByCityData, []domain.BusStation] {
	return &findBusStationsByCityHandler{stations: stations}
}

func (h *findBusStationsByCityHandler) Handle(ctx context.Context, query pkgDomain.Query[FindBusStationsByCityData]) ([]domain.BusStation, error) {
	return h.stations.FindByCity(ctx, query.Payload().City)
}

type busStationCreatedEventHandler struct {
	logger pkgApp.AppLogger
}

func NewBusStationCreatedEventHandler(logger pkgApp.AppLogger) pkgApp.EventHandler[pkgDomain.Event[string], string] {
	return &busStationCreatedEventHandler{logger: logger}
}

func (h *busStationCreatedEventHandler) Handle(ctx context.Context, event pkgDomain.Event[string]) error {
	h.logger.Info(ctx, "event received", map[string]interface{}{
		"event_name": event.EventName(),
		"payload":    event.Payload(),
	})
	return nil
}
