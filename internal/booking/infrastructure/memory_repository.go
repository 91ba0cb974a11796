package infrastructure

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mmacedo-dev/bustrip/internal/booking/domain"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
)

// InMemoryPassengerRepository backs tests and the messaging demos.
type InMemoryPassengerRepository struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]domain.Passenger
}

func NewInMemoryPassengerRepository() *InMemoryPassengerRepository {
	return &InMemoryPassengerRepository{
		data: make(map[int64]domain.Passenger),
	}
}

func (r *InMemoryPassengerRepository) Save(_ context.Context, passenger domain.Passenger) (domain.Passenger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	passenger.ID = r.nextID
	r.data[passenger.ID] = passenger
	return passenger, nil
}

func (r *InMemoryPassengerRepository) FindAll(_ context.Context) ([]domain.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	passengers := make([]domain.Passenger, 0, len(r.data))
	for _, passenger := range r.data {
		passengers = append(passengers, passenger)
	}
	sort.Slice(passengers, func(i, j int) bool { return passengers[i].ID < passengers[j].ID })
	return passengers, nil
}

func (r *InMemoryPassengerRepository) FindByID(_ context.Context, id int64) (domain.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	passenger, exists := r.data[id]
	if !exists {
		return domain.Passenger{}, pkgDomain.NewNotFoundError(fmt.Sprintf("no passenger found with ID: %d", id))
	}
	return passenger, nil
}

func (r *InMemoryPassengerRepository) FindByDocument(_ context.Context, document string) (domain.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, passenger := range r.data {
		if passenger.Document == document {
			return passenger, nil
		}
	}
	return domain.Passenger{}, pkgDomain.NewNotFoundError(fmt.Sprintf("no passenger found with document: %s", document))
}

func (r *InMemoryPassengerRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[id]; !exists {
		return pkgDomain.NewNotFoundError(fmt.Sprintf("no passenger found with ID: %d", id))
	}
	delete(r.data, id)
	return nil
}
