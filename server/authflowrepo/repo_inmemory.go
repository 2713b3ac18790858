package authflowrepo

import (
	"errors"
	"sync"
	"time"
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo
// interface. Expired states are pruned lazily on access.
type InMemoryRepo struct {
	mu     sync.RWMutex
	states map[string]AuthFlowState
}

// NewInMemoryRepo creates a new in-memory auth flow state repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		states: make(map[string]AuthFlowState),
	}
}

// Upsert stores or updates an auth flow state
func (r *InMemoryRepo) Upsert(state string, flowState AuthFlowState) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked(time.Now())
	r.states[state] = flowState
	return nil
}

// Get retrieves an auth flow state by state parameter
func (r *InMemoryRepo) Get(state string) (AuthFlowState, error) {
	if state == "" {
		return AuthFlowState{}, errors.New("state cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	flowState, exists := r.states[state]
	if !exists {
		return AuthFlowState{}, errors.New("state not found")
	}
	if flowState.Expired(time.Now()) {
		return AuthFlowState{}, errors.New("state expired")
	}

	return flowState, nil
}

// Delete removes an auth flow state
func (r *InMemoryRepo) Delete(state string) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, state)
	return nil
}

func (r *InMemoryRepo) pruneLocked(now time.Time) {
	for state, flowState := range r.states {
		if flowState.Expired(now) {
			delete(r.states, state)
		}
	}
}
