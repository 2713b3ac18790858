package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/jrsteele09/go-oidc-webapp/internal/errors"
)

// defaultRedisTTL bounds sessions whose identity carries no expires_in hint.
const defaultRedisTTL = 24 * time.Hour

// RedisRepo is a Redis-backed implementation of Repo. Session lifetime is
// enforced by key TTL derived from the identity's expires_in.
type RedisRepo struct {
	client *redis.Client
	prefix string
}

// NewRedisRepo creates a Redis-backed session repository.
func NewRedisRepo(client *redis.Client) *RedisRepo {
	return &RedisRepo{
		client: client,
		prefix: "session:",
	}
}

func (r *RedisRepo) key(sessionID string) string {
	return r.prefix + sessionID
}

// Upsert creates or updates a login session
func (r *RedisRepo) Upsert(ctx context.Context, sessionID string, session Session) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("sessions: failed to marshal: %w", err)
	}

	ttl := defaultRedisTTL
	if session.Identity.ExpiresIn > 0 {
		ttl = time.Duration(session.Identity.ExpiresIn) * time.Second
	}

	if err := r.client.Set(ctx, r.key(sessionID), data, ttl).Err(); err != nil {
		return fmt.Errorf("sessions: redis set: %w", err)
	}
	return nil
}

// Get retrieves a login session by ID
func (r *RedisRepo) Get(ctx context.Context, sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, fmt.Errorf("sessionID is required")
	}

	val, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return Session{}, apperrors.ErrSessionNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("sessions: redis get: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return Session{}, fmt.Errorf("sessions: failed to unmarshal: %w", err)
	}

	return session, nil
}

// Delete removes a login session
func (r *RedisRepo) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}

	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("sessions: redis del: %w", err)
	}
	return nil
}
