package sessions

import (
	"context"
	"errors"
	"sync"

	apperrors "github.com/jrsteele09/go-oidc-webapp/internal/errors"
)

// InMemoryRepo is a thread-safe in-memory implementation of Repo. Sessions
// live for the lifetime of the process; this is the default store.
type InMemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewInMemoryRepo creates a new in-memory session repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		sessions: make(map[string]Session),
	}
}

// Upsert creates or updates a login session
func (r *InMemoryRepo) Upsert(_ context.Context, sessionID string, session Session) error {
	if sessionID == "" {
		return errors.New("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = session
	return nil
}

// Get retrieves a login session by ID
func (r *InMemoryRepo) Get(_ context.Context, sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, errors.New("sessionID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return Session{}, apperrors.ErrSessionNotFound
	}

	return session, nil
}

// Delete removes a login session
func (r *InMemoryRepo) Delete(_ context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.New("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}
