package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/precinct-io/case-tracker/internal/api/middleware"
	"github.com/precinct-io/case-tracker/internal/core/domain"
)

// actor returns the authenticated user placed in the context by the
// session middleware, nil for anonymous requests.
func actor(c echo.Context) *domain.User {
	return middleware.Actor(c)
}

// pathID parses the numeric :id path parameter. A malformed id behaves
// like a missing record.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound)
	}
	return id, nil
}

// page merges the actor into the template data so the layout can render
// navigation for the current user.
func page(c echo.Context, data echo.Map) echo.Map {
	if data == nil {
		data = echo.Map{}
	}
	if _, ok := data["Actor"]; !ok {
		data["Actor"] = actor(c)
	}
	return data
}
