package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/precinct-io/case-tracker/internal/core/domain"
	"github.com/precinct-io/case-tracker/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, user domain.User) *domain.User {
	t.Helper()
	created, err := repo.Create(context.Background(), &user)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestUserService_List_Forbidden(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubMailer{}, zerolog.Nop())

	guest := &domain.User{ID: 1, Role: domain.RoleGuest}
	if _, err := svc.List(context.Background(), guest); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for guest, got %v", err)
	}
	if _, err := svc.ListPending(context.Background(), &domain.User{ID: 2, Role: domain.RoleDetective}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for detective on pending list, got %v", err)
	}
}

func TestUserService_ListPending(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubMailer{}, zerolog.Nop())

	seedUser(t, repo, domain.User{Name: "Bob", Email: "b@x.com", Role: domain.RoleGuest, Approved: true})
	pending := seedUser(t, repo, domain.User{Name: "Alice", Email: "a@x.com", Role: domain.RoleDetective})

	boss := &domain.User{ID: 99, Role: domain.RoleBoss}
	users, err := svc.ListPending(context.Background(), boss)
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	if len(users) != 1 || users[0].ID != pending.ID {
		t.Fatalf("unexpected pending list: %+v", users)
	}
}

func TestUserService_Get_SelfAccess(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubMailer{}, zerolog.Nop())

	guest := seedUser(t, repo, domain.User{Name: "Bob", Email: "b@x.com", Role: domain.RoleGuest, Approved: true})
	other := seedUser(t, repo, domain.User{Name: "Eve", Email: "e@x.com", Role: domain.RoleGuest, Approved: true})

	if _, err := svc.Get(context.Background(), guest, guest.ID); err != nil {
		t.Fatalf("self access failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), guest, other.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for guest viewing another profile, got %v", err)
	}
	if _, err := svc.Get(context.Background(), guest, 12345); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateProfile_AuthenticationOnly(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubMailer{}, zerolog.Nop())

	target := seedUser(t, repo, domain.User{Name: "Bob", Email: "b@x.com", Role: domain.RoleGuest, Approved: true})

	// Any authenticated actor may edit any profile; only anonymous is
	// rejected.
	stranger := &domain.User{ID: 555, Role: domain.RoleGuest}
	err := svc.UpdateProfile(context.Background(), stranger, target.ID, ports.UpdateProfileInput{
		Name: "Robert", LastName: "Smith", Email: "robert@x.com",
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	updated, _ := repo.FindByID(context.Background(), target.ID)
	if updated.Name != "Robert" || updated.Email != "robert@x.com" {
		t.Fatalf("profile not updated: %+v", updated)
	}

	if err := svc.UpdateProfile(context.Background(), nil, target.ID, ports.UpdateProfileInput{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for anonymous, got %v", err)
	}
}

func TestUserService_Approve_MailFailureKeepsApproval(t *testing.T) {
	repo := newStubUserRepo()
	mailer := &stubMailer{fail: true}
	svc := NewUserService(repo, mailer, zerolog.Nop())

	pending := seedUser(t, repo, domain.User{Name: "Alice", Email: "a@x.com", Role: domain.RoleDetective})
	boss := &domain.User{ID: 99, Role: domain.RoleBoss}

	if err := svc.Approve(context.Background(), boss, pending.ID); err != nil {
		t.Fatalf("approve must not surface a mail failure: %v", err)
	}
	if mailer.sendCount() != 1 {
		t.Fatalf("expected exactly one mail attempt, got %d", mailer.sendCount())
	}

	approved, _ := repo.FindByID(context.Background(), pending.ID)
	if !approved.Approved {
		t.Fatal("approval rolled back after mail failure")
	}
}

func TestUserService_Approve_Authorization(t *testing.T) {
	repo := newStubUserRepo()
	mailer := &stubMailer{}
	svc := NewUserService(repo, mailer, zerolog.Nop())

	pending := seedUser(t, repo, domain.User{Name: "Alice", Email: "a@x.com", Role: domain.RoleDetective})

	for _, actor := range []*domain.User{
		nil,
		{ID: 1, Role: domain.RoleGuest},
		{ID: 2, Role: domain.RoleDetective},
	} {
		if err := svc.Approve(context.Background(), actor, pending.ID); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("actor %+v: expected ErrForbidden, got %v", actor, err)
		}
	}
	if mailer.sendCount() != 0 {
		t.Fatalf("denied approvals must not send mail, got %d sends", mailer.sendCount())
	}

	boss := &domain.User{ID: 99, Role: domain.RoleBoss}
	if err := svc.Approve(context.Background(), boss, 4242); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for missing target, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubMailer{}, zerolog.Nop())

	target := seedUser(t, repo, domain.User{Name: "Bob", Email: "b@x.com", Role: domain.RoleGuest, Approved: true})
	boss := &domain.User{ID: 99, Role: domain.RoleBoss}

	if err := svc.Delete(context.Background(), &domain.User{ID: 2, Role: domain.RoleDetective}, target.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for detective, got %v", err)
	}

	if err := svc.Delete(context.Background(), boss, target.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), target.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatal("user still present after delete")
	}

	// Deleting a missing id reports not-found; the HTTP layer turns that
	// into a silent redirect.
	if err := svc.Delete(context.Background(), boss, target.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
