package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TravelsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bustrip_travels_created_total",
		Help: "Travels admitted by the CreateTravel use case.",
	})

	PassengersBooked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bustrip_passengers_booked_total",
		Help: "Seats successfully reserved.",
	})

	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bustrip_bookings_cancelled_total",
		Help: "Bookings cancelled inside the allowed window.",
	})

	SeatsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bustrip_seat_rejections_total",
		Help: "Booking attempts refused because the seat was taken.",
	})

	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bustrip_users_registered_total",
		Help: "Users created.",
	})
)

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
