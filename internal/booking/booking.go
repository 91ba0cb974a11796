package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mmacedo-dev/bustrip/internal/booking/application"
	"github.com/mmacedo-dev/bustrip/internal/booking/domain"
	"github.com/mmacedo-dev/bustrip/internal/booking/infrastructure"
	travelDomain "github.com/mmacedo-dev/bustrip/internal/travel/domain"
	userDomain "github.com/mmacedo-dev/bustrip/internal/user/domain"
	pkgApp "github.com/mmacedo-dev/bustrip/pkg/application"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
	pkgInfra "github.com/mmacedo-dev/bustrip/pkg/infrastructure"
)

// BookingSlice wires the passenger handlers onto their buses and exposes the
// HTTP surface.
type BookingSlice struct {
	httpHandler *infrastructure.PassengerHTTPHandler
}

func NewBookingSlice(
	passengers domain.PassengerRepository,
	travels travelDomain.TravelRepository,
	users userDomain.UserRepository,
	eventBus pkgApp.EventBus[pkgDomain.Event[string], string],
	logger pkgApp.AppLogger,
	admin func(http.Handler) http.Handler,
) *BookingSlice {
	createBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.CreatePassengerData], application.CreatePassengerData]()
	cancelBus := pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.CancelBookingData], application.CancelBookingData]()
	findAllBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindPassengersData], application.FindPassengersData, []domain.Passenger]()
	findByIDBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindPassengerByIDData], application.FindPassengerByIDData, domain.Passenger]()
	findByDocumentBus := pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.FindPassengerByDocumentData], application.FindPassengerByDocumentData, domain.Passenger]()

	createBus.RegisterHandler("CreatePassenger", application.NewCreatePassengerHandler(passengers, travels, users, eventBus, logger))
	cancelBus.RegisterHandler("CancelBooking", application.NewCancelBookingHandler(passengers, travels, eventBus, logger))
	findAllBus.RegisterHandler("FindPassengers", application.NewFindPassengersHandler(passengers))
	findByIDBus.RegisterHandler("FindPassengerByID", application.NewFindPassengerByIDHandler(passengers))
	findByDocumentBus.RegisterHandler("FindPassengerByDocument", application.NewFindPassengerByDocumentHandler(passengers))

	eventBus.RegisterHandler("PassengerBooked", application.NewPassengerBookedEventHandler(logger))
	eventBus.RegisterHandler("BookingCancelled", application.NewBookingCancelledEventHandler(logger))

	return &BookingSlice{
		httpHandler: infrastructure.NewPassengerHTTPHandler(createBus, cancelBus, findAllBus, findByIDBus, findByDocumentBus, admin),
	}
}

func (s *BookingSlice) RegisterRoutes(router chi.Router) {
	s.httpHandler.RegisterRoutes(router)
}
