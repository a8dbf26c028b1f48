package domain

import (
	"errors"
	"strings"
)

// Sentinel errors form the failure taxonomy. Every failure site constructs
// one of these (or a ValidationError); the HTTP error handler is the only
// place they are converted to wire responses.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("duplicate field value entered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidID          = errors.New("invalid id format")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrForbidden          = errors.New("admin access required")
)

// ValidationError carries per-field validation messages.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// NewValidationError builds a ValidationError from field messages.
func NewValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Messages: msgs}
}
