package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/precinct-io/case-tracker/internal/core/domain"
	"github.com/precinct-io/case-tracker/internal/core/ports"
)

// UserHandler serves the user directory pages.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List renders all users; detectives and bosses only.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context(), actor(c))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Redirect(http.StatusFound, "/")
		}
		return err
	}
	return c.Render(http.StatusOK, "users", page(c, echo.Map{"Users": users}))
}

// Pending renders the unapproved users awaiting sign-off; boss only.
func (h *UserHandler) Pending(c echo.Context) error {
	users, err := h.users.ListPending(c.Request().Context(), actor(c))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Redirect(http.StatusFound, "/")
		}
		return err
	}
	return c.Render(http.StatusOK, "users", page(c, echo.Map{"Users": users, "Approvals": true}))
}

// Show renders a single profile page. Missing ids are a 404; a viewer
// without access is silently sent home.
func (h *UserHandler) Show(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.users.Get(c.Request().Context(), actor(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Redirect(http.StatusFound, "/")
		}
		return err
	}
	return c.Render(http.StatusOK, "user_page", page(c, echo.Map{"User": user}))
}

// Update overwrites the profile fields and returns to the profile page.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var form profileForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	if err := c.Validate(&form); err != nil {
		user, getErr := h.users.Get(c.Request().Context(), actor(c), id)
		if getErr != nil {
			return getErr
		}
		return c.Render(http.StatusOK, "user_page", page(c, echo.Map{"User": user, "Error": err.Error()}))
	}

	err = h.users.UpdateProfile(c.Request().Context(), actor(c), id, ports.UpdateProfileInput{
		Name:     form.Name,
		LastName: form.LastName,
		Email:    form.Email,
	})
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", id))
}

// Delete removes a user; boss only. GET renders nothing and bounces
// home, POST performs the deletion. A missing target or a denied actor
// redirects without comment.
func (h *UserHandler) Delete(c echo.Context) error {
	if c.Request().Method == http.MethodGet {
		return c.Redirect(http.StatusFound, "/")
	}

	id, err := pathID(c)
	if err != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	err = h.users.Delete(c.Request().Context(), actor(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrUserNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return err
	}
	return c.Redirect(http.StatusFound, "/users")
}

// Approve flips the approval flag; boss only. Same GET/POST convention
// and silent-redirect behavior as Delete. On success the boss lands back
// on the pending list.
func (h *UserHandler) Approve(c echo.Context) error {
	if c.Request().Method == http.MethodGet {
		return c.Redirect(http.StatusFound, "/")
	}

	id, err := pathID(c)
	if err != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	err = h.users.Approve(c.Request().Context(), actor(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrUserNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return err
	}
	return c.Redirect(http.StatusFound, "/users/pending")
}
