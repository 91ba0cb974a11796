package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mmacedo-dev/bustrip/internal/station/application"
	"github.com/mmacedo-dev/bustrip/internal/station/domain"
	pkgApp "github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
	"github.com/mmacedo-dev/bustrip/pkg/infrastructure/httpjson"
)

const requestTimeout = 10 * time.Second

type BusStationHTTPHandler struct {
	createBus     pkgApp.CommandBus[pkgDomain.Command[application.CreateBusStationData], application.CreateBusStationData]
	deleteBus     pkgApp.CommandBus[pkgDomain.Command[application.DeleteBusStationData], application.DeleteBusStationData]
	findAllBus    pkgApp.QueryBus[pkgDomain.Query[application.FindBusStationsData], application.FindBusStationsData, []domain.BusStation]
	findByIDBus   pkgApp.QueryBus[pkgDomain.Query[application.FindBusStationByIDData], application.FindBusStationByIDData, domain.BusStation]
	findByCityBus pkgApp.QueryBus[pkgDomain.Query[application.FindBusStationsByCityData], application.FindBusStationsByCityData, []domain.BusStation]
	admin         func(http.Handler) http.Handler
}

func NewBusStationHTTPHandler(
	createBus pkgApp.CommandBus[pkgDomain.Command[application.CreateBusStationData], application.CreateBusStationData],
	deleteBus pkgApp.CommandBus[pkgDomain.Command[application.DeleteBusStationData], application.DeleteBusStationData],
	findAllBus pkgApp.QueryBus[pkgDomain.Query[application.FindBusStationsData], application.FindBusStationsData, []domain.BusStation],
	findByIDBus pkgApp.QueryBus[pkgDomain.Query[application.FindBusStationByIDData], application.FindBusStationByIDData, domain.BusStation],
	findByCityBus pkgApp.QueryBus[pkgDomain.Query[application.FindBusStationsByCityData], application.FindBusStationsByCityData, []domain.BusStation],
	admin func(http.Handler) http.Handler,
) *BusStationHTTPHandler {
	return &BusStationHTTPHandler{
		createBus:     createBus,
		deleteBus:     deleteBus,
		findAllBus:    findAllBus,
		findByIDBus:   findByIDBus,
		findByCityBus: findByCityBus,
		admin:         admin,
	}
}

func (h *BusStationHTTPHandler) HandleCreateBusStation(w http.ResponseWriter, r *http.Request) {
	var data application.CreateBusStationData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("invalid request body"))
		return
	}
	if data.Name == "" || data.City == "" || len(data.StateCode) != 2 {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("name, city and a two-letter stateCode are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.createBus.Dispatch(ctx, application.NewCreateBusStationCommand(data)); err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusCreated, map[string]interface{}{
		"message": "bus station registered",
		"data":    data,
	})
}

func (h *BusStationHTTPHandler) HandleDeleteBusStation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "stationID"), 10, 64)
	if err != nil || id < 1 {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("the ID must be a positive number"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.deleteBus.Dispatch(ctx, application.NewDeleteBusStationCommand(application.DeleteBusStationData{ID: id})); err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]interface{}{"message": "bus station deleted"})
}

func (h *BusStationHTTPHandler) HandleFindBusStations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	stations, err := h.findAllBus.Dispatch(ctx, application.NewFindBusStationsQuery())
	if err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, stations)
}

func (h *BusStationHTTPHandler) HandleFindBusStationByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "stationID"), 10, 64)
	if err != nil || id < 1 {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("the ID must be a positive number"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	station, err := h.findByIDBus.Dispatch(ctx, application.NewFindBusStationByIDQuery(application.FindBusStationByIDData{ID: id}))
	if err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, station)
}

func (h *BusStationHTTPHandler) HandleFindBusStationsByCity(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	stations, err := h.findByCityBus.Dispatch(ctx, application.NewFindBusStationsByCityQuery(application.FindBusStationsByCityData{City: city}))
	if err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, stations)
}

func (h *BusStationHTTPHandler) RegisterRoutes(router chi.Router) {
	router.With(h.admin).Post("/stations", h.HandleCreateBusStation)
	router.With(h.admin).Delete("/stations/{stationID}", h.HandleDeleteBusStation)
	router.Get("/stations", h.HandleFindBusStations)
	router.Get("/stations/{stationID}", h.HandleFindBusStationByID)
	router.Get("/stations/city/{city}", h.HandleFindBusStationsByCity)
}
