package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/precinct-io/case-tracker/internal/api/metrics"
	"github.com/precinct-io/case-tracker/internal/api/middleware"
	"github.com/precinct-io/case-tracker/internal/core/domain"
	"github.com/precinct-io/case-tracker/internal/core/ports"
)

// duplicateEmailMessage is shown on the re-rendered registration form.
const duplicateEmailMessage = "There's already an account linked to this e-mail"

// AuthHandler serves login, logout and the two registration flows.
type AuthHandler struct {
	auth       ports.AuthService
	sessions   ports.SessionService
	sessionTTL time.Duration
	// secureCookies marks session cookies Secure; enabled outside development.
	secureCookies bool
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionService, sessionTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, sessionTTL: sessionTTL, secureCookies: secureCookies}
}

// LoginForm renders the login page. Logged-in visitors are sent home.
// ?new_user=true shows the pending-approval notice after detective
// registration.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	if actor(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	data := page(c, echo.Map{})
	if c.QueryParam("new_user") == "true" {
		data["Notice"] = "Your account is awaiting approval. You will receive an e-mail once a boss approves it."
	}
	return c.Render(http.StatusOK, "login", data)
}

// Login verifies credentials and establishes a session. Every failure
// mode (unknown email, wrong password, unapproved account) produces the
// same redirect back to the login page so nothing can be learned about
// which part failed.
func (h *AuthHandler) Login(c echo.Context) error {
	if actor(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	var form loginForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusFound, "/login")
	}
	if err := c.Validate(&form); err != nil {
		return c.Redirect(http.StatusFound, "/login")
	}

	user, err := h.auth.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) ||
			errors.Is(err, domain.ErrWrongPassword) ||
			errors.Is(err, domain.ErrNotApproved) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.Redirect(http.StatusFound, "/login")
		}
		return err
	}

	token, err := h.sessions.Issue(c.Request().Context(), user)
	if err != nil {
		return err
	}
	h.setSessionCookie(c, token)

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusFound, "/")
}

// Logout revokes the session and clears the cookie. Safe to repeat.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.CookieName); err == nil {
		if err := h.sessions.Revoke(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	middleware.ClearCookie(c)
	return c.Redirect(http.StatusFound, "/")
}

// RegisterGuestForm renders the guest registration page.
func (h *AuthHandler) RegisterGuestForm(c echo.Context) error {
	if actor(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.Render(http.StatusOK, "register", page(c, echo.Map{}))
}

// RegisterGuest creates an approved guest account and sends the visitor
// to the home page. The guest is not logged in automatically.
func (h *AuthHandler) RegisterGuest(c echo.Context) error {
	if actor(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	form, handled, err := h.bindRegisterForm(c, false)
	if handled || err != nil {
		return err
	}

	_, err = h.auth.RegisterGuest(c.Request().Context(), ports.RegisterInput{
		Name:     form.Name,
		LastName: form.LastName,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return c.Render(http.StatusOK, "register", page(c, echo.Map{"Error": duplicateEmailMessage}))
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(domain.RoleGuest.String()).Inc()
	return c.Redirect(http.StatusFound, "/")
}

// RegisterDetectiveForm renders the detective registration page.
func (h *AuthHandler) RegisterDetectiveForm(c echo.Context) error {
	if actor(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.Render(http.StatusOK, "register", page(c, echo.Map{"Detective": true}))
}

// RegisterDetective creates an unapproved detective account and sends the
// visitor to the login page flagged as pending approval.
func (h *AuthHandler) RegisterDetective(c echo.Context) error {
	if actor(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	form, handled, err := h.bindRegisterForm(c, true)
	if handled || err != nil {
		return err
	}

	_, err = h.auth.RegisterDetective(c.Request().Context(), ports.RegisterInput{
		Name:        form.Name,
		LastName:    form.LastName,
		Email:       form.Email,
		Password:    form.Password,
		DetectiveID: form.DetectiveID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return c.Render(http.StatusOK, "register", page(c, echo.Map{"Detective": true, "Error": duplicateEmailMessage}))
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(domain.RoleDetective.String()).Inc()
	return c.Redirect(http.StatusFound, "/login?new_user=true")
}

// bindRegisterForm binds and validates the registration form. When the
// form is invalid the registration page is re-rendered with the message
// and handled reports true; the caller returns err as-is.
func (h *AuthHandler) bindRegisterForm(c echo.Context, detective bool) (form registerForm, handled bool, err error) {
	if err := c.Bind(&form); err != nil {
		return form, false, err
	}

	msg := ""
	if vErr := c.Validate(&form); vErr != nil {
		msg = vErr.Error()
	} else if detective && form.DetectiveID == "" {
		msg = "detective_id is required"
	}
	if msg == "" {
		return form, false, nil
	}

	data := page(c, echo.Map{"Error": msg})
	if detective {
		data["Detective"] = true
	}
	return form, true, c.Render(http.StatusOK, "register", data)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
