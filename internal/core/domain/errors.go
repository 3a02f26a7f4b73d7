package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrWrongPassword   = errors.New("wrong password")
	ErrNotApproved     = errors.New("account not approved")
	ErrCaseNotFound    = errors.New("case not found")
	ErrForbidden       = errors.New("access forbidden")
	ErrSessionNotFound = errors.New("session not found")
)
