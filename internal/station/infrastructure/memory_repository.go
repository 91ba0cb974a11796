package infrastructure

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mmacedo-dev/bustrip/internal/station/domain"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
)

// InMemoryBusStationRepository backs tests and the messaging demos.
type InMemoryBusStationRepository struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]domain.BusStation
}

func NewInMemoryBusStationRepository() *InMemoryBusStationRepository {
	return &InMemoryBusStationRepository{
		data: make(map[int64]domain.BusStation),
	}
}

func (r *InMemoryBusStationRepository) Save(_ context.Context, station domain.BusStation) (domain.BusStation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	station.ID = r.nextID
	r.data[station.ID] = station
	return station, nil
}

func (r *InMemoryBusStationRepository) FindAll(_ context.Context) ([]domain.BusStation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stations := make([]domain.BusStation, 0, len(r.data))
	for _, station := range r.data {
		stations = append(stations, station)
	}
	sort.Slice(stations, func(i, j int) bool { return stations[i].ID < stations[j].ID })
	return stations, nil
}

func (r *InMemoryBusStationRepository) FindByID(_ context.Context, id int64) (domain.BusStation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	station, exists := r.data[id]
	if !exists {
		return domain.BusStation{}, pkgDomain.NewNotFoundError(fmt.Sprintf("no bus station found with ID: %d", id))
	}
	return station, nil
}

func (r *InMemoryBusStationRepository) FindByName(_ context.Context, name string) (domain.BusStation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, station := range r.data {
		if station.Name == name {
			return station, nil
		}
	}
	return domain.BusStation{}, pkgDomain.NewNotFoundError(fmt.Sprintf("no bus station found with name: %s", name))
}

func (r *InMemoryBusStationRepository) FindByCity(_ context.Context, city string) ([]domain.BusStation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stations []domain.BusStation
	for _, station := range r.data {
		if station.City == city {
			stations = append(stations, station)
		}
	}
	sort.Slice(stations, func(i, j int) bool { return stations[i].ID < stations[j].ID })
	return stations, nil
}

func (r *InMemoryBusStationRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[id]; !exists {
		return pkgDomain.NewNotFoundError(fmt.Sprintf("no bus station found with ID: %d", id))
	}
	delete(r.data, id)
	return nil
}
