package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mmacedo-dev/bustrip/internal/booking/application"
	"github.com/mmacedo-dev/bustrip/internal/booking/domain"
	travelDomain "github.com/mmacedo-dev/bustrip/internal/travel/domain"
	pkgApp "github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
	"github.com/mmacedo-dev/bustrip/pkg/infrastructure/httpjson"
)

const requestTimeout = 10 * time.Second

type PassengerHTTPHandler struct {
	createBus         pkgApp.CommandBus[pkgDomain.Command[application.CreatePassengerData], application.CreatePassengerData]
	cancelBus         pkgApp.CommandBus[pkgDomain.Command[application.CancelBookingData], application.CancelBookingData]
	findAllBus        pkgApp.QueryBus[pkgDomain.Query[application.FindPassengersData], application.FindPassengersData, []domain.Passenger]
	findByIDBus       pkgApp.QueryBus[pkgDomain.Query[application.FindPassengerByIDData], application.FindPassengerByIDData, domain.Passenger]
	findByDocumentBus pkgApp.QueryBus[pkgDomain.Query[application.FindPassengerByDocumentData], application.FindPassengerByDocumentData, domain.Passenger]
	admin             func(http.Handler) http.Handler
}

func NewPassengerHTTPHandler(
	createBus pkgApp.CommandBus[pkgDomain.Command[application.CreatePassengerData], application.CreatePassengerData],
	cancelBus pkgApp.CommandBus[pkgDomain.Command[application.CancelBookingData], application.CancelBookingData],
	findAllBus pkgApp.QueryBus[pkgDomain.Query[application.FindPassengersData], application.FindPassengersData, []domain.Passenger],
	findByIDBus pkgApp.QueryBus[pkgDomain.Query[application.FindPassengerByIDData], application.FindPassengerByIDData, domain.Passenger],
	findByDocumentBus pkgApp.QueryBus[pkgDomain.Query[application.FindPassengerByDocumentData], application.FindPassengerByDocumentData, domain.Passenger],
	admin func(http.Handler) http.Handler,
) *PassengerHTTPHandler {
	return &PassengerHTTPHandler{
		createBus:         createBus,
		cancelBus:         cancelBus,
		findAllBus:        findAllBus,
		findByIDBus:       findByIDBus,
		findByDocumentBus: findByDocumentBus,
		admin:             admin,
	}
}

func (h *PassengerHTTPHandler) HandleCreatePassenger(w http.ResponseWriter, r *http.Request) {
	var data application.CreatePassengerData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("invalid request body"))
		return
	}
	if data.Name == "" || data.Document == "" {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("name and document are required"))
		return
	}
	if data.SeatNumber < travelDomain.FirstSeat || data.SeatNumber > travelDomain.LastSeat {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("seatNumber must be between 1 and 46"))
		return
	}
	if data.TravelID < 1 || data.UserID < 1 {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("travelId and userId are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.createBus.Dispatch(ctx, application.NewCreatePassengerCommand(data)); err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusCreated, map[string]interface{}{
		"message": "passenger booked",
		"data":    data,
	})
}

func (h *PassengerHTTPHandler) HandleCancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "passengerID"), 10, 64)
	if err != nil || id < 1 {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("the ID must be a positive number"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.cancelBus.Dispatch(ctx, application.NewCancelBookingCommand(application.CancelBookingData{ID: id})); err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]interface{}{"message": "booking cancelled"})
}

func (h *PassengerHTTPHandler) HandleFindPassengers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	passengers, err := h.findAllBus.Dispatch(ctx, application.NewFindPassengersQuery())
	if err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, passengers)
}

func (h *PassengerHTTPHandler) HandleFindPassengerByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "passengerID"), 10, 64)
	if err != nil || id < 1 {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("the ID must be a positive number"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	passenger, err := h.findByIDBus.Dispatch(ctx, application.NewFindPassengerByIDQuery(application.FindPassengerByIDData{ID: id}))
	if err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, passenger)
}

func (h *PassengerHTTPHandler) HandleFindPassengerByDocument(w http.ResponseWriter, r *http.Request) {
	document := chi.URLParam(r, "document")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	passenger, err := h.findByDocumentBus.Dispatch(ctx, application.NewFindPassengerByDocumentQuery(application.FindPassengerByDocumentData{Document: document}))
	if err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, passenger)
}

func (h *PassengerHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Post("/passengers", h.HandleCreatePassenger)
	router.Delete("/passengers/{passengerID}", h.HandleCancelBooking)
	router.With(h.admin).Get("/passengers", h.HandleFindPassengers)
	router.With(h.admin).Get("/passengers/document/{document}", h.HandleFindPassengerByDocument)
	router.Get("/passengers/{passengerID}", h.HandleFindPassengerByID)
}
