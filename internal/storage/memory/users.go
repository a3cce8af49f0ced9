package memory

import (
	"context"
	"sync"

	"github.com/yndnr/todovault-go/internal/core/domain"
)

// UserStore holds the fixed credential table.
//
// Users are loaded once at startup; there is no registration surface,
// so lookups only take a read lock.
type UserStore struct {
	mu     sync.RWMutex
	byName map[string]*domain.User
	byID   map[int64]*domain.User
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{
		byName: make(map[string]*domain.User),
		byID:   make(map[int64]*domain.User),
	}
}

// Seed loads users into the store, replacing any user with the same
// username or id.
func (s *UserStore) Seed(users []*domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range users {
		clone := *user
		s.byName[clone.Username] = &clone
		s.byID[clone.ID] = &clone
	}
}

// GetByUsername retrieves a user by exact username match.
func (s *UserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	clone := *user
	return &clone, nil
}

// GetByID retrieves a user by id.
func (s *UserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	clone := *user
	return &clone, nil
}

// Count returns the number of stored users.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byID)
}
