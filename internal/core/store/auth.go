package store

import (
	"context"
	"sync"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

// AuthStore holds the browsing session's user. One session, one user; the
// admin invoice view is gated on the role.
type AuthStore struct {
	mu   sync.Mutex
	kv   port.KV
	ids  port.IDGenerator
	user *domain.User
}

func NewAuthStore(kv port.KV, ids port.IDGenerator) *AuthStore {
	return &AuthStore{kv: kv, ids: ids}
}

// Load restores a persisted session, if any.
func (s *AuthStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored domain.User
	ok, err := loadSnapshot(ctx, s.kv, keySession, &stored)
	if err != nil {
		return err
	}
	if ok {
		s.user = &stored
	}
	return nil
}

// Login starts a session for the given user name and role, replacing any
// existing one.
func (s *AuthStore) Login(ctx context.Context, name string, role domain.Role) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := domain.User{ID: s.ids.NewID(), Name: name, Role: role}
	s.user = &user
	if err := saveSnapshot(ctx, s.kv, keySession, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Logout ends the session and removes it from storage.
func (s *AuthStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	return s.kv.Remove(ctx, keySession)
}

func (s *AuthStore) Current() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func (s *AuthStore) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.IsAdmin()
}
