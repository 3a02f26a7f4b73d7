package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/precinct-io/case-tracker/internal/core/domain"
	"github.com/precinct-io/case-tracker/internal/core/ports"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// actorKey is the context key the resolved user is stored under.
const actorKey = "actor"

// Actor returns the authenticated user for the request, or nil when the
// request is anonymous.
func Actor(c echo.Context) *domain.User {
	actor, _ := c.Get(actorKey).(*domain.User)
	return actor
}

// SetActor stores the user as the request's actor. Exported for handler
// tests that bypass the middleware.
func SetActor(c echo.Context, user *domain.User) {
	c.Set(actorKey, user)
}

// LoadActor resolves the session cookie to a user when present and valid,
// and otherwise passes the request through anonymously. Used on routes
// that must behave differently for logged-in visitors without requiring
// a login.
func LoadActor(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user, ok := resolve(c, sessions); ok {
				SetActor(c, user)
			}
			return next(c)
		}
	}
}

// RequireActor resolves the session cookie and rejects anonymous requests
// with a redirect to the login page. A cookie that no longer resolves
// (revoked session, deleted user, tampering) is cleared on the way out.
func RequireActor(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := resolve(c, sessions)
			if !ok {
				ClearCookie(c)
				return c.Redirect(http.StatusFound, "/login")
			}
			SetActor(c, user)
			return next(c)
		}
	}
}

func resolve(c echo.Context, sessions ports.SessionService) (*domain.User, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	user, err := sessions.Resolve(c.Request().Context(), cookie.Value)
	if err != nil {
		return nil, false
	}
	return user, true
}

// ClearCookie expires the session cookie on the client.
func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
