package ports

import (
	"context"

	"github.com/precinct-io/case-tracker/internal/core/domain"
)

// CaseRepository defines persistence for case records.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.Case) (*domain.Case, error)
	FindByID(ctx context.Context, id int64) (*domain.Case, error)
	// List returns all cases in insertion order, for every requester.
	List(ctx context.Context) ([]domain.Case, error)
	Update(ctx context.Context, id int64, title, description, content string) error
	Delete(ctx context.Context, id int64) error
}
