package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/precinct-io/case-tracker/internal/core/domain"
)

// RequireRole gates a route on the actor's role. Denied requests are
// redirected to the home page, not answered with an error status; the
// site never explains a permission failure.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := Actor(c)
			if actor == nil {
				return c.Redirect(http.StatusFound, "/login")
			}
			if _, ok := allowed[actor.Role]; !ok {
				return c.Redirect(http.StatusFound, "/")
			}
			return next(c)
		}
	}
}
