package travel

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	stationDomain "github.com/mmacedo-dev/bustrip/internal/station/domain"
	"github.com/mmacedo-dev/bustrip/internal/travel/application"
	"github.com/mmacedo-dev/bustrip/internal/travel/domain"
	"github.com/mmacedo-dev/bustrip/internal/travel/infrastructure"
	pkgApp "github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
	pkgInfra "github.com/mmacedo-dev/bustrip/pkg/infrastructure"
)

// TravelSlice wires the schedule handlers onto their buses and exposes the
// HTTP surface.
type TravelSlice struct {
	httpHandler *infrastructure.TravelHTTPHandler
}

func NewTravelSlice(
	travels domain.TravelRepository,
	stations stationDomain.BusStationRepository,
	planner domain.RoutePlanner,
	eventBus pkgApp.EventBus[pkgDomain.Event[string], string],
	logger pkgApp.AppLogger,
	admin func(http.Handler) http.Handler,
) *TravelSlice {
	createBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.CreateTravelData], application.CreateTravelData]()
	deleteBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.DeleteTravelData], application.DeleteTravelData]()
	findAllBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindTravelsData], application.FindTravelsData, []domain.Travel]()
	findByIDBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindTravelByIDData], application.FindTravelByIDData, domain.Travel]()
	searchBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.SearchTravelsData], application.SearchTravelsData, []domain.Travel]()

	createBus.RegisterHandler("CreateTravel", application.NewCreateTravelHandler(travels, stations, planner, eventBus, logger))
	deleteBus.RegisterHandler("DeleteTravel", application.NewDeleteTravelHandler(travels, logger))
	findAllBus.RegisterHandler("FindTravels", application.NewFindTravelsHandler(travels))
	findByIDBus.RegisterHandler("FindTravelByID", application.NewFindTravelByIDHandler(travels))
	searchBus.RegisterHandler("SearchTravels", application.NewSearchTravelsHandler(travels))

	eventBus.RegisterHandler("TravelCreated", application.NewTravelCreatedEventHandler(logger))

	return &TravelSlice{
		httpHandler: infrastructure.NewTravelHTTPHandler(createBus, deleteBus, findAllBus, findByIDBus, searchBus, admin),
	}
}

func (s *TravelSlice) RegisterRoutes(router chi.Router) {
	s.httpHandler.RegisterRoutes(router)
}
