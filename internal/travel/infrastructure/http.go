package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mmacedo-dev/bustrip/internal/travel/application"
	"github.com/mmacedo-dev/bustrip/internal/travel/domain"
	pkgApp "github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
	"github.com/mmacedo-dev/bustrip/pkg/infrastructure/httpjson"
)

const requestTimeout = 10 * time.Second

type TravelHTTPHandler struct {
	createBus   pkgApp.CommandBus[pkgDomain.Command[application.CreateTravelData], application.CreateTravelData]
	deleteBus   pkgApp.CommandBus[pkgDomain.Command[application.DeleteTravelData], application.DeleteTravelData]
	findAllBus  pkgApp.QueryBus[pkgDomain.Query[application.FindTravelsData], application.FindTravelsData, []domain.Travel]
	findByIDBus pkgApp.QueryBus[pkgDomain.Query[application.FindTravelByIDData], application.FindTravelByIDData, domain.Travel]
	searchBus   pkgApp.QueryBus[pkgDomain.Query[application.SearchTravelsData], application.SearchTravelsData, []domain.Travel]
	admin       func(http.Handler) http.Handler
}

func NewTravelHTTPHandler(
	createBus pkgApp.CommandBus[pkgDomain.Command[application.CreateTravelData], application.CreateTravelData],
	deleteBus pkgApp.CommandBus[pkgDomain.Command[application.DeleteTravelData], application.DeleteTravelData],
	findAllBus pkgApp.QueryBus[pkgDomain.Query[application.FindTravelsData], application.FindTravelsData, []domain.Travel],
	findByIDBus pkgApp.QueryBus[pkgDomain.Query[application.FindTravelByIDData], application.FindTravelByIDData, domain.Travel],
	searchBus pkgApp.QueryBus[pkgDomain.Query[application.SearchTravelsData], application.SearchTravelsData, []domain.Travel],
	admin func(http.Handler) http.Handler,
) *TravelHTTPHandler {
	return &TravelHTTPHandler{
		createBus:   createBus,
		deleteBus:   deleteBus,
		findAllBus:  findAllBus,
		findByIDBus: findByIDBus,
		searchBus:   searchBus,
		admin:       admin,
	}
}

func (h *TravelHTTPHandler) HandleCreateTravel(w http.ResponseWriter, r *http.Request) {
	var data application.CreateTravelData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("invalid request body"))
		return
	}
	if data.DepartureStationID < 1 || data.ArrivalStationID < 1 {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("departureStationId and arrivalStationId are required"))
		return
	}
	if data.DepartureTime.IsZero() {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("departureTime is required"))
		return
	}
	if data.Price.IsNegative() || data.Price.IsZero() {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("the price must be greater than zero"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.createBus.Dispatch(ctx, application.NewCreateTravelCommand(data)); err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusCreated, map[string]interface{}{
		"message": "travel scheduled",
		"data":    data,
	})
}

func (h *TravelHTTPHandler) HandleDeleteTravel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "travelID"), 10, 64)
	if err != nil || id < 1 {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("the ID must be a positive number"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.deleteBus.Dispatch(ctx, application.NewDeleteTravelCommand(application.DeleteTravelData{ID: id})); err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]interface{}{"message": "travel deleted"})
}

func (h *TravelHTTPHandler) HandleFindTravels(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	travels, err := h.findAllBus.Dispatch(ctx, application.NewFindTravelsQuery())
	if err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, travels)
}

func (h *TravelHTTPHandler) HandleFindTravelByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "travelID"), 10, 64)
	if err != nil || id < 1 {
		httpjson.RespondError(w, pkgDomain.NewBadRequestError("the ID must be a positive number"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	travel, err := h.findByIDBus.Dispatch(ctx, application.NewFindTravelByIDQuery(application.FindTravelByIDData{ID: id}))
	if err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, travel)
}

// HandleSearchTravels filters by originCity, destinationCity and
// departureDate query parameters, all optional.
func (h *TravelHTTPHandler) HandleSearchTravels(w http.ResponseWriter, r *http.Request) {
	data := application.SearchTravelsData{
		OriginCity:      r.URL.Query().Get("originCity"),
		DestinationCity: r.URL.Query().Get("destinationCity"),
	}
	if raw := r.URL.Query().Get("departureDate"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httpjson.RespondError(w, pkgDomain.NewBadRequestError("departureDate must use the YYYY-MM-DD format"))
			return
		}
		data.DepartureDate = date
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	travels, err := h.searchBus.Dispatch(ctx, application.NewSearchTravelsQuery(data))
	if err != nil {
		httpjson.RespondError(w, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, travels)
}

func (h *TravelHTTPHandler) RegisterRoutes(router chi.Router) {
	router.With(h.admin).Post("/travels", h.HandleCreateTravel)
	router.With(h.admin).Delete("/travels/{travelID}", h.HandleDeleteTravel)
	router.Get("/travels", h.HandleFindTravels)
	router.Get("/travels/search", h.HandleSearchTravels)
	router.Get("/travels/{travelID}", h.HandleFindTravelByID)
}
