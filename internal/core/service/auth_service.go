package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/precinct-io/case-tracker/internal/core/domain"
	"github.com/precinct-io/case-tracker/internal/core/ports"
)

// AuthService implements registration and credential verification.
type AuthService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

// RegisterGuest creates a guest account, approved immediately.
func (s *AuthService) RegisterGuest(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.register(ctx, input, domain.RoleGuest, true)
}

// RegisterDetective creates a detective account that stays unapproved
// until a boss signs it off.
func (s *AuthService) RegisterDetective(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.register(ctx, input, domain.RoleDetective, false)
}

func (s *AuthService) register(ctx context.Context, input ports.RegisterInput, role domain.Role, approved bool) (*domain.User, error) {
	// Uniqueness is enforced by this pre-check only; there is no unique
	// index on email, so two concurrent registrations can still both
	// pass. Accepted for a low-traffic internal tool.
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("email lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		DetectiveID:  input.DetectiveID,
		Approved:     approved,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("user_id", created.ID).
		Str("role", created.Role.String()).
		Bool("approved", created.Approved).
		Msg("user registered")

	return created, nil
}

// Login verifies credentials against the stored hash and the approval
// flag. The three failure modes stay distinct here so callers can count
// them; the HTTP layer presents them identically to avoid account
// enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrWrongPassword
	}

	if !user.Approved {
		return nil, domain.ErrNotApproved
	}

	return user, nil
}
