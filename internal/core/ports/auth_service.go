package ports

import (
	"context"

	"github.com/precinct-io/case-tracker/internal/core/domain"
)

// RegisterInput carries the registration form fields common to both flows.
type RegisterInput struct {
	Name     string
	LastName string
	Email    string
	Password string
	// DetectiveID is the external badge reference; detective flow only.
	DetectiveID string
}

// AuthService defines registration and credential verification.
type AuthService interface {
	// RegisterGuest creates an approved guest account. Returns
	// domain.ErrDuplicateEmail when the email is already taken.
	RegisterGuest(ctx context.Context, input RegisterInput) (*domain.User, error)
	// RegisterDetective creates an unapproved detective account pending
	// boss approval. Returns domain.ErrDuplicateEmail on a taken email.
	RegisterDetective(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials. Fails with domain.ErrUserNotFound,
	// domain.ErrWrongPassword or domain.ErrNotApproved; callers present
	// all three identically.
	Login(ctx context.Context, email, password string) (*domain.User, error)
}
