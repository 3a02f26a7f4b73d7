package ports

import (
	"context"
	"time"

	"github.com/precinct-io/case-tracker/internal/core/domain"
)

// SessionStore is the server-side session registry. Entries expire after
// their TTL and are removed eagerly on logout, which is what makes a
// signed cookie revocable.
type SessionStore interface {
	Save(ctx context.Context, sid string, userID int64, ttl time.Duration) error
	// Lookup returns the user id bound to sid, or domain.ErrSessionNotFound.
	Lookup(ctx context.Context, sid string) (int64, error)
	// Delete removes sid; deleting an absent sid is not an error.
	Delete(ctx context.Context, sid string) error
}

// SessionService issues, resolves and revokes login sessions. The token
// handed to the browser is an integrity-signed value; the session itself
// lives in the SessionStore.
type SessionService interface {
	// Issue creates a session for the user and returns the signed cookie
	// value.
	Issue(ctx context.Context, user *domain.User) (string, error)
	// Resolve maps a cookie value back to a live user record. Any
	// failure (bad signature, revoked session, deleted user) returns
	// domain.ErrSessionNotFound: the caller treats the request as
	// anonymous.
	Resolve(ctx context.Context, token string) (*domain.User, error)
	// Revoke destroys the session behind the token; idempotent, and
	// tolerant of garbage tokens.
	Revoke(ctx context.Context, token string) error
}
