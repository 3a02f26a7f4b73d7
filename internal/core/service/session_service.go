package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/precinct-io/case-tracker/internal/core/domain"
	"github.com/precinct-io/case-tracker/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// SessionService issues and resolves login sessions. The browser holds a
// signed HS256 token carrying the session id; the authoritative state is
// the server-side store, so logout revokes a session immediately no
// matter what the client still presents.
type SessionService struct {
	store  ports.SessionStore
	users  ports.UserRepository
	secret []byte
	ttl    time.Duration
	logger zerolog.Logger
}

func NewSessionService(store ports.SessionStore, users ports.UserRepository, secret string, ttl time.Duration, logger zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{
		store:  store,
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
	}
}

// TTL returns the session lifetime, used to bound the cookie max-age.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Issue creates a session bound to the user and returns the signed token
// for the cookie.
func (s *SessionService) Issue(ctx context.Context, user *domain.User) (string, error) {
	sid := uuid.NewString()
	if err := s.store.Save(ctx, sid, user.ID, s.ttl); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	claims := jwt.MapClaims{
		"sid": sid,
		"uid": strconv.FormatInt(user.ID, 10),
		"exp": time.Now().Add(s.ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Resolve maps a cookie token back to a live user. Every failure mode
// collapses to domain.ErrSessionNotFound: tampered token, revoked or
// expired session, session/user mismatch, or a user deleted since login.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	sid, uid, err := s.parse(token)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	storedUID, err := s.store.Lookup(ctx, sid)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return nil, fmt.Errorf("session lookup: %w", err)
		}
		return nil, domain.ErrSessionNotFound
	}
	if storedUID != uid {
		return nil, domain.ErrSessionNotFound
	}

	user, err := s.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Deleted while logged in; drop the orphaned session.
			if delErr := s.store.Delete(ctx, sid); delErr != nil {
				s.logger.Warn().Err(delErr).Str("sid", sid).Msg("orphaned session not deleted")
			}
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return user, nil
}

// Revoke destroys the session behind the token. Garbage tokens are
// ignored so logout is always safe to call.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	sid, _, err := s.parse(token)
	if err != nil {
		return nil
	}
	return s.store.Delete(ctx, sid)
}

func (s *SessionService) parse(token string) (sid string, uid int64, err error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", 0, domain.ErrSessionNotFound
	}

	sid, _ = claims["sid"].(string)
	uidStr, _ := claims["uid"].(string)
	uid, convErr := strconv.ParseInt(uidStr, 10, 64)
	if sid == "" || convErr != nil {
		return "", 0, domain.ErrSessionNotFound
	}
	return sid, uid, nil
}
