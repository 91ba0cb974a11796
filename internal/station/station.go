package station

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mmacedo-dev/bustrip/internal/station/application"
	"github.com/mmacedo-dev/bustrip/internal/station/domain"
	"github.com/mmacedo-dev/bustrip/internal/station/infrastructure"
	pkgApp "github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
	pkgInfra "github.com/mmacedo-dev/bustrip/pkg/infrastructure"
)

// BusStationSlice wires the station handlers onto their buses and exposes
// the HTTP surface.
type BusStationSlice struct {
	httpHandler *infrastructure.BusStationHTTPHandler
}

func NewBusStationSlice(
	stations domain.BusStationRepository,
	locator domain.PlaceLocator,
	eventBus pkgApp.EventBus[pkgDomain.Event[string], string],
	logger pkgApp.AppLogger,
	admin func(http.Handler) http.Handler,
) *BusStationSlice {
	createBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.CreateBusStationData], application.CreateBusStationData]()
	deleteBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.DeleteBusStationData], application.DeleteBusStationData]()
	findAllBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindBusStationsData], application.FindBusStationsData, []domain.BusStation]()
	findByIDBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindBusStationByIDData], application.FindBusStationByIDData, domain.BusStation]()
	findByCityBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindBusStationsByCityData], application.FindBusStationsByCityData, []domain.BusStation]()

	createBus.RegisterHandler("CreateBusStation", application.NewCreateBusStationHandler(stations, locator, eventBus, logger))
	deleteBus.RegisterHandler("DeleteBusStation", application.NewDeleteBusStationHandler(stations, logger))
	findAllBus.RegisterHandler("FindBusStations", application.NewFindBusStationsHandler(stations))
	findByIDBus.RegisterHandler("FindBusStationByID", application.NewFindBusStationByIDHandler(stations))
	findByCityBus.RegisterHandler("FindBusStationsByCity", application.NewFindBusStationsByCityHandler(stations))

	eventBus.RegisterHandler("BusStationCreated", application.NewBusStationCreatedEventHandler(logger))

	return &BusStationSlice{
		httpHandler: infrastructure.NewBusStationHTTPHandler(createBus, deleteBus, findAllBus, findByIDBus, findByCityBus, admin),
	}
}

func (s *BusStationSlice) RegisterRoutes(router chi.Router) {
	s.httpHandler.RegisterRoutes(router)
}
