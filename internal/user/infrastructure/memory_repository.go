package infrastructure

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mmacedo-dev/bustrip/internal/user/domain"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
)

// InMemoryUserRepository backs tests and the messaging demos.
type InMemoryUserRepository struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]domain.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		data: make(map[int64]domain.User),
	}
}

func (r *InMemoryUserRepository) Save(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	user.ID = r.nextID
	r.data[user.ID] = user
	return user, nil
}

func (r *InMemoryUserRepository) FindAll(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.data))
	for _, user := range r.data {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *InMemoryUserRepository) FindByID(_ context.Context, id int64) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.data[id]
	if !exists {
		return domain.User{}, pkgDomain.NewNotFoundError(fmt.Sprintf("no user found with ID: %d", id))
	}
	return user, nil
}

func (r *InMemoryUserRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	return r.findBy(func(user domain.User) bool { return user.Email == email },
		fmt.Sprintf("no user found with email: %s", email))
}

func (r *InMemoryUserRepository) FindByCPF(_ context.Context, cpf string) (domain.User, error) {
	return r.findBy(func(user domain.User) bool { return user.CPF == cpf },
		fmt.Sprintf("no user found with CPF: %s", cpf))
}

func (r *InMemoryUserRepository) FindByTelephone(_ context.Context, telephone string) (domain.User, error) {
	return r.findBy(func(user domain.User) bool { return user.Telephone == telephone },
		fmt.Sprintf("no user found with telephone: %s", telephone))
}

func (r *InMemoryUserRepository) findBy(match func(domain.User) bool, notFound string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.data {
		if match(user) {
			return user, nil
		}
	}
	return domain.User{}, pkgDomain.NewNotFoundError(notFound)
}

func (r *InMemoryUserRepository) UpdateTelephone(_ context.Context, id int64, telephone string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.data[id]
	if !exists {
		return domain.User{}, pkgDomain.NewNotFoundError(fmt.Sprintf("no user found with ID: %d", id))
	}
	user.Telephone = telephone
	r.data[id] = user
	return user, nil
}

func (r *InMemoryUserRepository) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.data[id]
	if !exists {
		return pkgDomain.NewNotFoundError(fmt.Sprintf("no user found with ID: %d", id))
	}
	user.PasswordHash = passwordHash
	r.data[id] = user
	return nil
}

func (r *InMemoryUserRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[id]; !exists {
		return pkgDomain.NewNotFoundError(fmt.Sprintf("no user found with ID: %d", id))
	}
	delete(r.data, id)
	return nil
}
