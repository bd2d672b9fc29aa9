package credential

import (
	"errors"
	"sync"

	"bookreview/internal/entity"
)

var (
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store owns the registered users for the process lifetime. Registration
// checks and inserts under one lock, so two concurrent registrations of the
// same username cannot both succeed.
//
// Known limitation: passwords are stored and compared as plain strings,
// matching the service this replaces. Do not reuse this store anywhere
// real credentials are at stake.
type Store struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func NewStore() *Store {
	return &Store{users: make(map[string]entity.User)}
}

// Register creates a user. The caller validates field presence.
func (s *Store) Register(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return ErrAlreadyExists
	}
	s.users[username] = entity.User{Username: username, Password: password}
	return nil
}

// Authenticate returns the user record iff the exact username/password pair
// is registered.
func (s *Store) Authenticate(username, password string) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[username]
	if !ok || user.Password != password {
		return entity.User{}, ErrInvalidCredentials
	}
	return user, nil
}
