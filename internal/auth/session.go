// Package auth holds the signed in operator's session. The session is the
// token capability handed to the API client; persistence sits behind Store.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/dressdash/internal/models"
)

// Store persists the session between runs
type Store interface {
	Load(ctx context.Context) (models.Identity, error)
	Save(ctx context.Context, id models.Identity) error
	Delete(ctx context.Context) error
}

// Authenticator talks to the backend auth endpoints
type Authenticator interface {
	Login(ctx context.Context, email, password string) (models.Identity, error)
	Me(ctx context.Context) (models.Identity, error)
}

// Session is safe for concurrent use; the API client reads the token from
// command goroutines while the UI updates it.
type Session struct {
	mu       sync.RWMutex
	identity models.Identity
	store    Store
	logger   *slog.Logger
}

// NewSession creates a signed out session backed by store
func NewSession(store Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{store: store, logger: logger}
}

// Token returns the bearer token, empty when signed out
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity.Token
}

// Identity returns the current identity and whether one is signed in
func (s *Session) Identity() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.identity.Token != ""
}

// SignedIn reports whether a token is held
func (s *Session) SignedIn() bool {
	return s.Token() != ""
}

// IsAdmin reports whether the signed in operator is an admin
func (s *Session) IsAdmin() bool {
	id, ok := s.Identity()
	return ok && id.IsAdmin()
}

// IsStaff reports whether the signed in operator is staff
func (s *Session) IsStaff() bool {
	id, ok := s.Identity()
	return ok && id.IsStaff()
}

// Boot reads the persisted session once at startup. A missing or unreadable
// session leaves the operator signed out.
func (s *Session) Boot(ctx context.Context) {
	id, err := s.store.Load(ctx)
	if err != nil || id.Token == "" {
		s.logger.Debug("no stored session", "error", err)
		return
	}
	s.mu.Lock()
	s.identity = id
	s.mu.Unlock()
	s.logger.Info("restored session", "user_id", id.UserID, "role", id.Role)
}

// Set replaces the identity in memory and in the store
func (s *Session) Set(ctx context.Context, id models.Identity) error {
	s.mu.Lock()
	s.identity = id
	s.mu.Unlock()
	if err := s.store.Save(ctx, id); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Clear signs out locally and forgets the persisted token
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.identity = models.Identity{}
	s.mu.Unlock()
	if err := s.store.Delete(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Login authenticates with the backend and persists the new identity
func (s *Session) Login(ctx context.Context, authn Authenticator, email, password string) (models.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.Identity{}, ErrMissingCredentials
	}

	id, err := authn.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn("login failed", "email", email, "error", err)
		return models.Identity{}, err
	}
	if id.Email == "" {
		id.Email = email
	}
	if err := s.Set(ctx, id); err != nil {
		return id, err
	}
	s.logger.Info("signed in", "user_id", id.UserID, "role", id.Role)
	return id, nil
}

// Logout signs out. There is no server side logout, dropping the token is enough.
func (s *Session) Logout(ctx context.Context) error {
	id, _ := s.Identity()
	if err := s.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("signed out", "user_id", id.UserID)
	return nil
}

// Refresh re-validates the token with the backend and refreshes the
// profile. Any failure clears the session.
func (s *Session) Refresh(ctx context.Context, authn Authenticator) (models.Identity, error) {
	current, ok := s.Identity()
	if !ok {
		return models.Identity{}, ErrNotSignedIn
	}

	me, err := authn.Me(ctx)
	if err != nil {
		s.logger.Warn("session refresh failed", "error", err)
		if clearErr := s.Clear(ctx); clearErr != nil {
			s.logger.Error("failed to clear rejected session", "error", clearErr)
		}
		return models.Identity{}, fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	me.Token = current.Token
	if me.Email == "" {
		me.Email = current.Email
	}
	if err := s.Set(ctx, me); err != nil {
		return me, err
	}
	return me, nil
}
