package persistence

import (
	"context"
	"sync"

	"github.com/Ron9508/bookstore-backend/modules/users/domain"
)

// InMemoryRepository implements UserRepository using in-memory storage.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		users: make(map[string]*domain.User),
	}
}

// Compile-time interface check.
var _ domain.UserRepository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) Insert(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.users {
		if other.Email().Equals(user.Email()) {
			return domain.ErrEmailExists
		}
	}
	r.users[user.ID().String()] = user
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id.String()]
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *InMemoryRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email().Equals(email) {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryRepository) Exists(ctx context.Context, email domain.Email) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email().Equals(email) {
			return true, nil
		}
	}
	return false, nil
}
