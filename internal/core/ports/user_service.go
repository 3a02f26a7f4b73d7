package ports

import (
	"context"

	"github.com/precinct-io/case-tracker/internal/core/domain"
)

// UpdateProfileInput carries the self-editable user fields.
type UpdateProfileInput struct {
	Name     string
	LastName string
	Email    string
}

// UserService defines the user directory operations.
type UserService interface {
	// List returns every user; allowed for detectives and bosses.
	List(ctx context.Context, actor *domain.User) ([]domain.User, error)
	// ListPending returns unapproved users; boss only.
	ListPending(ctx context.Context, actor *domain.User) ([]domain.User, error)
	// Get returns one user, visible to detectives, bosses, or the user
	// themself.
	Get(ctx context.Context, actor *domain.User, targetID int64) (*domain.User, error)
	// UpdateProfile overwrites name, last name and email. Only
	// authentication is required; there is no ownership check.
	UpdateProfile(ctx context.Context, actor *domain.User, targetID int64, input UpdateProfileInput) error
	// Approve flips approved=true and fires a best-effort notification
	// email; a failed send never fails the approval. Boss only.
	Approve(ctx context.Context, actor *domain.User, targetID int64) error
	// Delete hard-deletes a user; boss only. The target's cases are left
	// behind with a dangling owner id.
	Delete(ctx context.Context, actor *domain.User, targetID int64) error
}
