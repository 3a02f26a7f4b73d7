package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/precinct-io/case-tracker/internal/core/domain"
	"github.com/precinct-io/case-tracker/internal/core/ports"
)

// CaseHandler serves the case directory pages.
type CaseHandler struct {
	cases ports.CaseService
}

func NewCaseHandler(cases ports.CaseService) *CaseHandler {
	return &CaseHandler{cases: cases}
}

// Home renders the case list. Every authenticated actor sees every case.
func (h *CaseHandler) Home(c echo.Context) error {
	cases, err := h.cases.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "index", page(c, echo.Map{"Cases": cases}))
}

// NewForm renders the case creation page; detectives and bosses only
// (gated at the route).
func (h *CaseHandler) NewForm(c echo.Context) error {
	return c.Render(http.StatusOK, "new_case", page(c, echo.Map{}))
}

// Create stores a new case owned by the actor and returns home.
func (h *CaseHandler) Create(c echo.Context) error {
	var form caseForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusOK, "new_case", page(c, echo.Map{"Error": err.Error()}))
	}

	_, err := h.cases.Create(c.Request().Context(), actor(c), ports.CaseInput{
		Title:       form.Title,
		Description: form.Description,
		Content:     form.Content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Redirect(http.StatusFound, "/")
		}
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

// Show renders a single case page; missing ids are a 404.
func (h *CaseHandler) Show(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	summary, err := h.cases.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "case_page", page(c, echo.Map{
		"Case":      summary,
		"CanDelete": domain.CanDeleteCase(actor(c), &summary.Case),
	}))
}

// Update overwrites the case fields and returns to the case page.
func (h *CaseHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var form caseForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	if err := c.Validate(&form); err != nil {
		summary, getErr := h.cases.Get(c.Request().Context(), id)
		if getErr != nil {
			return getErr
		}
		return c.Render(http.StatusOK, "case_page", page(c, echo.Map{
			"Case":      summary,
			"CanDelete": domain.CanDeleteCase(actor(c), &summary.Case),
			"Error":     err.Error(),
		}))
	}

	err = h.cases.Update(c.Request().Context(), actor(c), id, ports.CaseInput{
		Title:       form.Title,
		Description: form.Description,
		Content:     form.Content,
	})
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, fmt.Sprintf("/case/%d", id))
}

// Delete removes a case for its owner or a boss. GET bounces home; a
// missing case or a denied actor redirects without comment.
func (h *CaseHandler) Delete(c echo.Context) error {
	if c.Request().Method == http.MethodGet {
		return c.Redirect(http.StatusFound, "/")
	}

	id, err := pathID(c)
	if err != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	err = h.cases.Delete(c.Request().Context(), actor(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrCaseNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}
