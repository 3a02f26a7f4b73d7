package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/precinct-io/case-tracker/internal/api/metrics"
	"github.com/precinct-io/case-tracker/internal/core/domain"
	"github.com/precinct-io/case-tracker/internal/core/ports"
)

// CaseService implements the case directory.
type CaseService struct {
	cases  ports.CaseRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewCaseService(cases ports.CaseRepository, users ports.UserRepository, logger zerolog.Logger) *CaseService {
	return &CaseService{cases: cases, users: users, logger: logger}
}

// List returns all cases in creation order with owner names joined in.
// There is no role gate on reads: the home view shows every case to any
// authenticated actor.
func (s *CaseService) List(ctx context.Context) ([]ports.CaseSummary, error) {
	cases, err := s.cases.List(ctx)
	if err != nil {
		return nil, err
	}

	names, err := s.ownerNames(ctx, cases)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.CaseSummary, 0, len(cases))
	for _, c := range cases {
		summaries = append(summaries, ports.CaseSummary{Case: c, OwnerName: names[c.OwnerID]})
	}
	return summaries, nil
}

func (s *CaseService) Create(ctx context.Context, actor *domain.User, input ports.CaseInput) (*domain.Case, error) {
	if actor == nil || !actor.Role.Can(domain.ActionManageCases) {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	c := &domain.Case{
		OwnerID:     actor.ID,
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.cases.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	metrics.CasesCreatedTotal.Inc()

	s.logger.Info().Int64("case_id", created.ID).Int64("owner_id", actor.ID).Msg("case created")
	return created, nil
}

func (s *CaseService) Get(ctx context.Context, caseID int64) (*ports.CaseSummary, error) {
	c, err := s.cases.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	summary := &ports.CaseSummary{Case: *c}
	owner, err := s.users.FindByID(ctx, c.OwnerID)
	switch {
	case err == nil:
		summary.OwnerName = owner.FullName()
	case errors.Is(err, domain.ErrUserNotFound):
		// Owner was deleted; the case stays with a dangling reference.
	default:
		return nil, err
	}
	return summary, nil
}

// Update overwrites the case fields. Authentication is the only
// requirement; there is deliberately no ownership check here.
func (s *CaseService) Update(ctx context.Context, actor *domain.User, caseID int64, input ports.CaseInput) error {
	if actor == nil {
		return domain.ErrForbidden
	}
	if _, err := s.cases.FindByID(ctx, caseID); err != nil {
		return err
	}
	return s.cases.Update(ctx, caseID, input.Title, input.Description, input.Content)
}

func (s *CaseService) Delete(ctx context.Context, actor *domain.User, caseID int64) error {
	c, err := s.cases.FindByID(ctx, caseID)
	if err != nil {
		return err
	}

	if !domain.CanDeleteCase(actor, c) {
		return domain.ErrForbidden
	}

	if err := s.cases.Delete(ctx, caseID); err != nil {
		return err
	}
	metrics.CasesDeletedTotal.Inc()

	s.logger.Info().Int64("case_id", caseID).Int64("deleted_by", actor.ID).Msg("case deleted")
	return nil
}

// ownerNames resolves the distinct owner ids of cases to display names.
// Owners that no longer exist are simply absent from the result.
func (s *CaseService) ownerNames(ctx context.Context, cases []domain.Case) (map[int64]string, error) {
	names := make(map[int64]string)
	for _, c := range cases {
		if _, seen := names[c.OwnerID]; seen {
			continue
		}
		owner, err := s.users.FindByID(ctx, c.OwnerID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		names[c.OwnerID] = owner.FullName()
	}
	return names, nil
}
