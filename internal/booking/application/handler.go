package application

import (
	"context"
	"fmt"
	"time"

	"github.com/mmacedo-dev/bustrip/internal/booking/domain"
	"github.com/mmacedo-dev/bustrip/internal/monitoring"
	travelDomain "github.com/mmacedo-dev/bustrip/internal/travel/domain"
	userDomain "github.com/mmacedo-dev/bustrip/internal/user/domain"
	pkgApp "github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
)

type createPassengerHandler struct {
	passengers domain.PassengerRepository
	travels    travelDomain.TravelRepository
	users      userDomain.UserRepository
	eventBus   pkgApp.EventBus[pkgDomain.Event[string], string]
	logger     pkgApp.AppLogger
}

func NewCreatePassengerHandler(
	passengers domain.PassengerRepository,
	travels travelDomain.TravelRepository,
	users userDomain.UserRepository,
	eventBus pkgApp.EventBus[pkgDomain.Event[string], string],
	logger pkgApp.AppLogger,
) pkgApp.CommandHandler[pkgDomain.Command[CreatePassengerData], CreatePassengerData] {
	return &createPassengerHandler{
		passengers: passengers,
		travels:    travels,
		users:      users,
		eventBus:   eventBus,
		logger:     logger,
	}
}

func (h *createPassengerHandler) Handle(ctx context.Context, command pkgDomain.Command[CreatePassengerData]) error {
	data := command.Payload()

	if _, err := h.travels.FindByID(ctx, data.TravelID); err != nil {
		return err
	}
	if _, err := h.users.FindByID(ctx, data.UserID); err != nil {
		return err
	}

	// The repository reserves the seat atomically, so two concurrent bookings
	// for the same seat cannot both succeed.
	if _, err := h.travels.ReserveSeat(ctx, data.TravelID, data.SeatNumber); err != nil {
		if pkgDomain.IsKind(err, pkgDomain.KindBadRequest) {
			monitoring.SeatsRejected.Inc()
		}
		return err
	}

	passenger := domain.Passenger{
		Name:          data.Name,
		Document:      data.Document,
		SeatNumber:    data.SeatNumber,
		PaymentMethod: data.PaymentMethod,
		TravelID:      data.TravelID,
		UserID:        data.UserID,
	}

	saved, err := h.passengers.Save(ctx, passenger)
	if err != nil {
		// Give the seat back so a failed write does not strand inventory.
		if _, releaseErr := h.travels.ReleaseSeat(ctx, data.TravelID, data.SeatNumber); releaseErr != nil {
			pkgApp.LogError(ctx, h.logger, "error releasing seat after failed booking", releaseErr, map[string]interface{}{
				"travel_id": data.TravelID,
				"seat":      data.SeatNumber,
			})
		}
		pkgApp.LogError(ctx, h.logger, "error saving passenger", err, map[string]interface{}{"passenger": passenger})
		return err
	}

	event := NewPassengerBookedEvent(fmt.Sprintf("passenger %s booked seat %d on travel %d", saved.Name, saved.SeatNumber, saved.TravelID))
	if err := h.eventBus.Publish(ctx, event); err != nil {
		return err
	}

	h.logger.Info(ctx, "passenger booked", map[string]interface{}{
		"id":        saved.ID,
		"travel_id": saved.TravelID,
		"seat":      saved.SeatNumber,
	})
	return nil
}

type cancelBookingHandler struct {
	passengers domain.PassengerRepository
	travels    travelDomain.TravelRepository
	eventBus   pkgApp.EventBus[pkgDomain.Event[string], string]
	logger     pkgApp.AppLogger
}

func NewCancelBookingHandler(
	passengers domain.PassengerRepository,
	travels travelDomain.TravelRepository,
	eventBus pkgApp.EventBus[pkgDomain.Event[string], string],
	logger pkgApp.AppLogger,
) pkgApp.CommandHandler[pkgDomain.Command[CancelBookingData], CancelBookingData] {
	return &cancelBookingHandler{
		passengers: passengers,
		travels:    travels,
		eventBus:   eventBus,
		logger:     logger,
	}
}

func (h *cancelBookingHandler) Handle(ctx context.Context, command pkgDomain.Command[CancelBookingData]) error {
	data := command.Payload()

	passenger, err := h.passengers.FindByID(ctx, data.ID)
	if err != nil {
		return err
	}

	travel, err := h.travels.FindByID(ctx, passenger.TravelID)
	if err != nil {
		return err
	}

	if !passenger.CanCancel(travel.DepartureTime, time.Now()) {
		return pkgDomain.NewBadRequestError("cancellation is only allowed until 1 hour before departure")
	}

	if err := h.passengers.Delete(ctx, passenger.ID); err != nil {
		pkgApp.LogError(ctx, h.logger, "error deleting passenger", err, map[string]interface{}{"id": passenger.ID})
		return err
	}

	if _, err := h.travels.ReleaseSeat(ctx, passenger.TravelID, passenger.SeatNumber); err != nil {
		pkgApp.LogError(ctx, h.logger, "error releasing seat after cancellation", err, map[string]interface{}{
			"travel_id": passenger.TravelID,
			"seat":      passenger.SeatNumber,
		})
		return err
	}

	event := NewBookingCancelledEvent(fmt.Sprintf("booking %d cancelled, seat %d released on travel %d", passenger.ID, passenger.SeatNumber, passenger.TravelID))
	if err := h.eventBus.Publish(ctx, event); err != nil {
		return err
	}

	h.logger.Info(ctx, "booking cancelled", map[string]interface{}{
		"id":        passenger.ID,
		"travel_id": passenger.TravelID,
		"seat":      passenger.SeatNumber,
	})
	return nil
}

type findPassengersHandler struct {
	passengers domain.PassengerRepository
}

func NewFindPassengersHandler(passengers domain.PassengerRepository) pkgApp.QueryHandler[pkgDomain.Query[FindPassengersData], FindPassengersData, []domain.Passenger] {
	return &findPassengersHandler{passengers: passengers}
}

func (h *findPassengersHandler) Handle(ctx context.Context, _ pkgDomain.Query[FindPassengersData]) ([]domain.Passenger, error) {
	return h.passengers.FindAll(ctx)
}

type findPassengerByIDHandler struct {
	passengers domain.PassengerRepository
}

func NewFindPassengerByIDHandler(passengers domain.PassengerRepository) pkgApp.QueryHandler[pkgDomain.Query[FindPassengerByIDData], FindPassengerByIDData, domain.Passenger] {
	return &findPassengerByIDHandler{passengers: passengers}
}

func (h *findPassengerByIDHandler) Handle(ctx context.Context, query pkgDomain.Query[FindPassengerByIDData]) (domain.Passenger, error) {
	return h.passengers.FindByID(ctx, query.Payload().ID)
}

type findPassengerByDocumentHandler struct {
	passengers domain.PassengerRepository
}

func NewFindPassengerByDocumentHandler(passengers domain.PassengerRepository) pkgApp.QueryHandler[pkgDomain.Query[FindPassengerByDocumentData], FindPassengerByDocumentData, domain.Passenger] {
	return &findPassengerByDocumentHandler{passengers: passengers}
}

func (h *findPassengerByDocumentHandler) Handle(ctx context.Context, query pkgDomain.Query[FindPassengerByDocumentData]) (domain.Passenger, error) {
	return h.passengers.FindByDocument(ctx, query.Payload().Document)
}

type passengerBookedEventHandler struct {
	logger pkgApp.AppLogger
}

func NewPassengerBookedEventHandler(logger pkgApp.AppLogger) pkgApp.EventHandler[pkgDomain.Event[string], string] {
	return &passengerBookedEventHandler{logger: logger}
}

func (h *passengerBookedEventHandler) Handle(ctx context.Context, event pkgDomain.Event[string]) error {
	monitoring.PassengersBooked.Inc()
	h.logger.Info(ctx, "event received", map[string]interface{}{
		"event_name": event.EventName(),
		"payload":    event.Payload(),
	})
	return nil
}

type bookingCancelledEventHandler struct {
	logger pkgApp.AppLogger
}

func NewBookingCancelledEventHandler(logger pkgApp.AppLogger) pkgApp.EventHandler[pkgDomain.Event[string], string] {
	return &bookingCancelledEventHandler{logger: logger}
}

func (h *bookingCancelledEventHandler) Handle(ctx context.Context, event pkgDomain.Event[string]) error {
	monitoring.BookingsCancelled.Inc()
	h.logger.Info(ctx, "event received", map[string]interface{}{
		"event_name": event.EventName(),
		"payload":    event.Payload(),
	})
	return nil
}
