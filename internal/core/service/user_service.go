package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/precinct-io/case-tracker/internal/api/metrics"
	"github.com/precinct-io/case-tracker/internal/core/domain"
	"github.com/precinct-io/case-tracker/internal/core/ports"
)

// UserService implements the user directory.
type UserService struct {
	users  ports.UserRepository
	mailer ports.Mailer
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, mailer ports.Mailer, logger zerolog.Logger) *UserService {
	return &UserService{users: users, mailer: mailer, logger: logger}
}

func (s *UserService) List(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if actor == nil || !actor.Role.Can(domain.ActionViewUsers) {
		return nil, domain.ErrForbidden
	}
	return s.users.List(ctx)
}

func (s *UserService) ListPending(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if actor == nil || !actor.Role.Can(domain.ActionApproveUsers) {
		return nil, domain.ErrForbidden
	}
	return s.users.ListPending(ctx)
}

func (s *UserService) Get(ctx context.Context, actor *domain.User, targetID int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if !domain.CanViewUser(actor, targetID) {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

// UpdateProfile overwrites the self-editable fields. Any authenticated
// actor may edit any profile; there is deliberately no ownership check
// here.
func (s *UserService) UpdateProfile(ctx context.Context, actor *domain.User, targetID int64, input ports.UpdateProfileInput) error {
	if actor == nil {
		return domain.ErrForbidden
	}
	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		return err
	}
	return s.users.UpdateProfile(ctx, targetID, input.Name, input.LastName, input.Email)
}

// Approve flips the approval flag and fires the notification email.
// The send is best-effort: a failure is logged and dropped, never
// surfaced, and never rolls the approval back.
func (s *UserService) Approve(ctx context.Context, actor *domain.User, targetID int64) error {
	if actor == nil || !actor.Role.Can(domain.ActionApproveUsers) {
		return domain.ErrForbidden
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return err
	}

	if err := s.users.SetApproved(ctx, targetID, true); err != nil {
		return err
	}
	metrics.ApprovalsTotal.Inc()

	if err := s.mailer.SendApproval(ctx, target.Email, target.Name); err != nil {
		metrics.ApprovalMailTotal.WithLabelValues("failed").Inc()
		s.logger.Warn().Err(err).
			Int64("user_id", targetID).
			Str("email", target.Email).
			Msg("approval email failed")
	} else {
		metrics.ApprovalMailTotal.WithLabelValues("sent").Inc()
	}

	s.logger.Info().Int64("user_id", targetID).Int64("approved_by", actor.ID).Msg("user approved")
	return nil
}

// Delete hard-deletes the target user. Cases owned by the target are not
// touched; their owner id dangles afterwards.
func (s *UserService) Delete(ctx context.Context, actor *domain.User, targetID int64) error {
	if actor == nil || !actor.Role.Can(domain.ActionDeleteUser) {
		return domain.ErrForbidden
	}

	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, targetID); err != nil {
		return err
	}
	metrics.UsersDeletedTotal.Inc()

	s.logger.Info().Int64("user_id", targetID).Int64("deleted_by", actor.ID).Msg("user deleted")
	return nil
}
