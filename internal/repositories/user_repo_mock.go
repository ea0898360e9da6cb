package repositories

import (
	"fmt"
	"sync"

	"storefront/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
// It enforces the same username uniqueness as the database index so the
// conflict path behaves identically in tests.
type MockUserRepository struct {
	users  map[string]models.User
	nextID uint
	mu     sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:  make(map[string]models.User),
		nextID: 1,
	}
}

// Create adds a new user, assigning the next id.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return fmt.Errorf("user %q: %w", user.Username, ErrDuplicate)
	}
	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	r.users[user.Username] = *user
	return nil
}

// GetByUsername returns a user by their username.
func (r *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	return &user, nil
}
