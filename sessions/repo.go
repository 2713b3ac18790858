package sessions

import "context"

// Repo defines how login sessions are stored and retrieved. Implementations
// must be safe for concurrent use.
type Repo interface {
	// Upsert creates or updates a session
	Upsert(ctx context.Context, sessionID string, session Session) error

	// Get retrieves a session by ID
	Get(ctx context.Context, sessionID string) (Session, error)

	// Delete removes a session by ID. Deleting an absent session is not an error.
	Delete(ctx context.Context, sessionID string) error
}
