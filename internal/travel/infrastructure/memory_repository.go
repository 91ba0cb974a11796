package infrastructure

import (
	"context"
	"fmt"
	"sort"
	"sync"

	stationDomain "github.com/mmacedo-dev/bustrip/internal/station/domain"
	"github.com/mmacedo-dev/bustrip/internal/travel/domain"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
)

// InMemoryTravelRepository backs tests and the messaging demos. It resolves
// city filters through the station repository, mirroring the join the
// relational implementation performs.
type InMemoryTravelRepository struct {
	mu       sync.RWMutex
	nextID   int64
	data     map[int64]domain.Travel
	stations stationDomain.BusStationRepository
}

func NewInMemoryTravelRepository(stations stationDomain.BusStationRepository) *InMemoryTravelRepository {
	return &InMemoryTravelRepository{
		data:     make(map[int64]domain.Travel),
		stations: stations,
	}
}

func (r *InMemoryTravelRepository) Save(_ context.Context, travel domain.Travel) (domain.Travel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	travel.ID = r.nextID
	r.data[travel.ID] = cloneTravel(travel)
	return travel, nil
}

func (r *InMemoryTravelRepository) FindAll(_ context.Context) ([]domain.Travel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	travels := make([]domain.Travel, 0, len(r.data))
	for _, travel := range r.data {
		travels = append(travels, cloneTravel(travel))
	}
	sort.Slice(travels, func(i, j int) bool { return travels[i].ID < travels[j].ID })
	return travels, nil
}

func (r *InMemoryTravelRepository) FindByID(_ context.Context, id int64) (domain.Travel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	travel, exists := r.data[id]
	if !exists {
		return domain.Travel{}, pkgDomain.NewNotFoundError(fmt.Sprintf("no travel found with ID: %d", id))
	}
	return cloneTravel(travel), nil
}

func (r *InMemoryTravelRepository) Search(ctx context.Context, filter domain.TravelSearchFilter) ([]domain.Travel, error) {
	travels, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var matched []domain.Travel
	for _, travel := range travels {
		if filter.OriginCity != "" {
			station, err := r.stations.FindByID(ctx, travel.DepartureStationID)
			if err != nil || station.City != filter.OriginCity {
				continue
			}
		}
		if filter.DestinationCity != "" {
			station, err := r.stations.FindByID(ctx, travel.ArrivalStationID)
			if err != nil || station.City != filter.DestinationCity {
				continue
			}
		}
		if !filter.DepartureDate.IsZero() {
			dayStart := domain.DayStart(filter.DepartureDate)
			dayEnd := dayStart.AddDate(0, 0, 1)
			if travel.DepartureTime.Before(dayStart) || !travel.DepartureTime.Before(dayEnd) {
				continue
			}
		}
		matched = append(matched, travel)
	}
	return matched, nil
}

func (r *InMemoryTravelRepository) ReserveSeat(_ context.Context, id int64, seatNumber int) (domain.Travel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	travel, exists := r.data[id]
	if !exists {
		return domain.Travel{}, pkgDomain.NewNotFoundError(fmt.Sprintf("no travel found with ID: %d", id))
	}

	updated := cloneTravel(travel)
	if err := updated.ReserveSeat(seatNumber); err != nil {
		return domain.Travel{}, err
	}

	r.data[id] = cloneTravel(updated)
	return updated, nil
}

func (r *InMemoryTravelRepository) ReleaseSeat(_ context.Context, id int64, seatNumber int) (domain.Travel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	travel, exists := r.data[id]
	if !exists {
		return domain.Travel{}, pkgDomain.NewNotFoundError(fmt.Sprintf("no travel found with ID: %d", id))
	}

	updated := cloneTravel(travel)
	updated.ReleaseSeat(seatNumber)

	r.data[id] = cloneTravel(updated)
	return updated, nil
}

func (r *InMemoryTravelRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[id]; !exists {
		return pkgDomain.NewNotFoundError(fmt.Sprintf("no travel found with ID: %d", id))
	}
	delete(r.data, id)
	return nil
}

// cloneTravel copies the seat slice so callers cannot mutate stored state.
func cloneTravel(travel domain.Travel) domain.Travel {
	seats := make(domain.Seats, len(travel.AvailableSeats))
	copy(seats, travel.AvailableSeats)
	travel.AvailableSeats = seats
	return travel
}
