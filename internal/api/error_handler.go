package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/precinct-io/case-tracker/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders the not-found page for missing routes and missing records.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a generic error page for everything else.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := resolveStatus(err, log, c)

		template := "error"
		if code == http.StatusNotFound {
			template = "not_found"
		}
		if renderErr := c.Render(code, template, echo.Map{}); renderErr != nil {
			_ = c.String(code, http.StatusText(code))
		}
	}
}

func resolveStatus(err error, log zerolog.Logger, c echo.Context) int {
	// Echo's own errors (404 from the router, method not allowed, bind
	// failures).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	// Lookups by id on view pages surface missing records as 404.
	if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrCaseNotFound) {
		return http.StatusNotFound
	}

	// Unexpected error: log the real cause, show nothing specific.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError
}
