package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
)

// Seat numbering is fixed at creation and never resized.
const (
	FirstSeat = 1
	LastSeat  = 46
)

// Seats is the set of unbooked seat numbers, kept sorted ascending and free
// of duplicates.
type Seats []int

// Travel is one scheduled trip between two bus stations. It owns its seat
// inventory: a seat number is in AvailableSeats if and only if it is
// currently unbooked.
type Travel struct {
	ID                 int64           `json:"id" gorm:"primaryKey"`
	DepartureTime      time.Time       `json:"departureTime" gorm:"index"`
	ArrivalTime        time.Time       `json:"arrivalTime"`
	SeatClass          string          `json:"seatClass"`
	Price              decimal.Decimal `json:"price" gorm:"type:numeric(10,2)"`
	DistanceKm         float64         `json:"distanceKm"`
	Duration           string          `json:"duration"`
	AvailableSeats     Seats           `json:"availableSeats" gorm:"serializer:json"`
	DepartureStationID int64           `json:"departureStationId" gorm:"index"`
	ArrivalStationID   int64           `json:"arrivalStationId" gorm:"index"`
}

// NewTravel builds a travel with the full seat inventory.
func NewTravel(departure, arrival time.Time, seatClass string, price decimal.Decimal, distanceKm float64, duration string, departureStationID, arrivalStationID int64) Travel {
	return Travel{
		DepartureTime:      departure,
		ArrivalTime:        arrival,
		SeatClass:          seatClass,
		Price:              price,
		DistanceKm:         distanceKm,
		Duration:           duration,
		AvailableSeats:     FullSeatRange(),
		DepartureStationID: departureStationID,
		ArrivalStationID:   arrivalStationID,
	}
}

func FullSeatRange() Seats {
	seats := make(Seats, 0, LastSeat-FirstSeat+1)
	for n := FirstSeat; n <= LastSeat; n++ {
		seats = append(seats, n)
	}
	return seats
}

// ReserveSeat removes seatNumber from the availability set. The failure
// message lists the remaining free seats so callers can offer alternatives.
func (t *Travel) ReserveSeat(seatNumber int) error {
	i := sort.SearchInts(t.AvailableSeats, seatNumber)
	if i >= len(t.AvailableSeats) || t.AvailableSeats[i] != seatNumber {
		return pkgDomain.NewBadRequestError(
			fmt.Sprintf("seat %d is not available; free seats: %v", seatNumber, t.AvailableSeats))
	}

	t.AvailableSeats = append(t.AvailableSeats[:i], t.AvailableSeats[i+1:]...)
	return nil
}

// ReleaseSeat returns seatNumber to the availability set. Releasing a seat
// that is already free, or one outside 1..46, is a no-op, so repeated
// cancellations cannot duplicate a seat.
func (t *Travel) ReleaseSeat(seatNumber int) {
	if seatNumber < FirstSeat || seatNumber > LastSeat {
		return
	}

	i := sort.SearchInts(t.AvailableSeats, seatNumber)
	if i < len(t.AvailableSeats) && t.AvailableSeats[i] == seatNumber {
		return
	}

	t.AvailableSeats = append(t.AvailableSeats, 0)
	copy(t.AvailableSeats[i+1:], t.AvailableSeats[i:])
	t.AvailableSeats[i] = seatNumber
}

// SeatAvailable reports whether seatNumber is currently unbooked.
func (t *Travel) SeatAvailable(seatNumber int) bool {
	i := sort.SearchInts(t.AvailableSeats, seatNumber)
	return i < len(t.AvailableSeats) && t.AvailableSeats[i] == seatNumber
}

// FormatDuration renders a trip duration the way schedules display it,
// e.g. "5h 30m".
func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
