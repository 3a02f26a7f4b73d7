package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/precinct-io/case-tracker/internal/core/domain"
)

// stubSessions resolves a single known token to a fixed user.
type stubSessions struct {
	token string
	user  *domain.User
}

func (s *stubSessions) Issue(context.Context, *domain.User) (string, error) {
	return s.token, nil
}

func (s *stubSessions) Resolve(_ context.Context, token string) (*domain.User, error) {
	if token == s.token && s.user != nil {
		return s.user, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (s *stubSessions) Revoke(context.Context, string) error { return nil }

func TestRequireActor_ValidCookie(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{token: "tok", user: &domain.User{ID: 7, Role: domain.RoleGuest}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tok"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireActor(sessions)(func(c echo.Context) error {
		if got := Actor(c); got == nil || got.ID != 7 {
			t.Fatalf("actor not set: %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireActor_AnonymousRedirects(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{token: "tok", user: &domain.User{ID: 7}}

	for _, cookie := range []*http.Cookie{nil, {Name: CookieName, Value: "revoked"}} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := RequireActor(sessions)(func(c echo.Context) error {
			t.Fatal("should not reach next handler")
			return nil
		})

		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", rec.Code)
		}
		if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
			t.Fatalf("expected redirect to /login, got %q", loc)
		}
	}
}

func TestLoadActor_PassesThroughAnonymously(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{token: "tok", user: &domain.User{ID: 7}}

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := LoadActor(sessions)(func(c echo.Context) error {
		if Actor(c) != nil {
			t.Fatal("expected anonymous actor")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
