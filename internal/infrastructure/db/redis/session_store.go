package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/precinct-io/case-tracker/internal/core/domain"
)

// SessionStore is the server-side session registry backed by Redis.
// Key format: session:<sid>, value: the user id. Entries expire with the
// session TTL; logout deletes them eagerly.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save registers sid for the user with the given TTL.
func (s *SessionStore) Save(ctx context.Context, sid string, userID int64, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(sid), strconv.FormatInt(userID, 10), ttl).Err()
}

// Lookup returns the user id bound to sid, or domain.ErrSessionNotFound
// when the session was revoked or has expired.
func (s *SessionStore) Lookup(ctx context.Context, sid string) (int64, error) {
	val, err := s.client.Get(ctx, s.key(sid)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, domain.ErrSessionNotFound
		}
		return 0, fmt.Errorf("session lookup: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("session lookup: corrupt value %q", val)
	}
	return userID, nil
}

// Delete removes sid from the registry. Deleting an absent sid is a no-op.
func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, s.key(sid)).Err()
}

func (s *SessionStore) key(sid string) string {
	return "session:" + sid
}
