package domain

import (
	"context"
	"time"
)

// Passenger is one seat reservation on a travel, tied to the buying user.
// It holds foreign keys only; the travel owns the seat inventory.
type Passenger struct {
	ID            int64  `json:"id" gorm:"primaryKey"`
	Name          string `json:"name"`
	Document      string `json:"document" gorm:"index"`
	SeatNumber    int    `json:"seatNumber"`
	PaymentMethod string `json:"paymentMethod"`
	TravelID      int64  `json:"travelId" gorm:"index"`
	UserID        int64  `json:"userId" gorm:"index"`
}

// CanCancel applies the cancellation cutoff: a booking may only be cancelled
// while strictly more than one hour remains before departure. Once the bus
// has departed there is nothing left to cancel.
func (p Passenger) CanCancel(departure, now time.Time) bool {
	return departure.Sub(now) > time.Hour
}

type PassengerRepository interface {
	Save(ctx context.Context, passenger Passenger) (Passenger, error)

	FindAll(ctx context.Context) ([]Passenger, error)
	FindByID(ctx context.Context, id int64) (Passenger, error)
	FindByDocument(ctx context.Context, document string) (Passenger, error)
	Delete(ctx context.Context, id int64) error
}
