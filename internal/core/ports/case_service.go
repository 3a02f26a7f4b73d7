package ports

import (
	"context"

	"github.com/precinct-io/case-tracker/internal/core/domain"
)

// CaseInput carries the case form fields.
type CaseInput struct {
	Title       string
	Description string
	Content     string
}

// CaseSummary is a case joined with its owner's display name for list
// and detail views. OwnerName is empty when the owner record no longer
// exists.
type CaseSummary struct {
	domain.Case
	OwnerName string
}

// CaseService defines the case directory operations.
type CaseService interface {
	// List returns every case in creation order, with owner names
	// resolved. Visible to any authenticated actor.
	List(ctx context.Context) ([]CaseSummary, error)
	// Create stores a new case owned by the actor; detectives and bosses
	// only.
	Create(ctx context.Context, actor *domain.User, input CaseInput) (*domain.Case, error)
	// Get returns one case with its owner name resolved.
	Get(ctx context.Context, caseID int64) (*CaseSummary, error)
	// Update overwrites title, description and content. Only
	// authentication is required; there is no ownership check.
	Update(ctx context.Context, actor *domain.User, caseID int64, input CaseInput) error
	// Delete removes a case; allowed for the owner or a boss.
	Delete(ctx context.Context, actor *domain.User, caseID int64) error
}
