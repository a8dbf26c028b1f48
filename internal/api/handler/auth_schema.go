package handler

import "github.com/brewhouse/coffee-shop-api/internal/core/domain"

// errorResponse mirrors the envelope produced by the central error
// handler; declared here so swag can reference it in annotations.
type errorResponse struct {
	Message string `json:"message"`
}

// Request types. Presence of required fields is checked by the service so
// that an entirely missing field yields the fixed "Please fill all required
// fields" message; validate tags only constrain values that were provided.

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// Response envelopes. Every success response carries a message alongside
// the payload; the shapes are fixed for compatibility with the existing
// browser clients.

type registerResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

type profileResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}
