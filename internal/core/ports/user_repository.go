package ports

import (
	"context"

	"github.com/precinct-io/case-tracker/internal/core/domain"
)

// UserRepository defines persistence for user records.
type UserRepository interface {
	// Create assigns an id and persists the user, returning the stored record.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByEmail matches the email exactly (case-sensitive).
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns all users in insertion order.
	List(ctx context.Context) ([]domain.User, error)
	// ListPending returns users with approved=false, in insertion order.
	ListPending(ctx context.Context) ([]domain.User, error)
	// UpdateProfile overwrites the self-editable fields of a user.
	UpdateProfile(ctx context.Context, id int64, name, lastName, email string) error
	SetApproved(ctx context.Context, id int64, approved bool) error
	// Delete hard-deletes the user. Owned cases are left in place with a
	// dangling owner id.
	Delete(ctx context.Context, id int64) error
}
