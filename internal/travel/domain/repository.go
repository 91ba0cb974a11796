package domain

import (
	"context"
	"time"
)

// TravelSearchFilter narrows a travel listing. Zero values mean "any".
type TravelSearchFilter struct {
	OriginCity      string
	DestinationCity string
	DepartureDate   time.Time
}

// DayStart returns midnight of t's calendar day in t's location, the lower
// bound of the departure-date filter. Every repository implementation uses
// this so a non-midnight filter selects the same day everywhere.
func DayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

type TravelRepository interface {
	Save(ctx context.Context, travel Travel) (Travel, error)

	FindAll(ctx context.Context) ([]Travel, error)
	FindByID(ctx context.Context, id int64) (Travel, error)
	Search(ctx context.Context, filter TravelSearchFilter) ([]Travel, error)

	// ReserveSeat and ReleaseSeat apply the seat mutation atomically against
	// concurrent bookings for the same travel and return the updated record.
	ReserveSeat(ctx context.Context, id int64, seatNumber int) (Travel, error)
	ReleaseSeat(ctx context.Context, id int64, seatNumber int) (Travel, error)

	Delete(ctx context.Context, id int64) error
}
