package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/brewhouse/coffee-shop-api/internal/core/domain"
)

func serveError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", rec.Body.String(), err)
	}
	return rec.Code, body.Message
}

// The status/message pairing is part of the wire contract consumed by the
// browser clients; every variant must map deterministically.
func TestErrorHandler_Taxonomy(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound, "Product not found"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"missing fields", domain.ErrMissingFields, http.StatusBadRequest, "Please fill all required fields"},
		{"duplicate email", domain.ErrEmailTaken, http.StatusConflict, "Duplicate field value entered"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"not authorized", domain.ErrNotAuthorized, http.StatusUnauthorized, "Not authorized"},
		{"invalid token", domain.ErrTokenInvalid, http.StatusUnauthorized, "Invalid token"},
		{"expired token", domain.ErrTokenExpired, http.StatusUnauthorized, "Token expired"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "Admin access required"},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest, "Invalid ID format"},
		{"wrapped sentinel", fmt.Errorf("find product: %w", domain.ErrProductNotFound), http.StatusNotFound, "Product not found"},
		{"validation", domain.NewValidationError("price must not be negative"), http.StatusBadRequest, "price must not be negative"},
		{"joined validation", domain.NewValidationError("price must not be negative", "category must be one of: [Espresso Cappuccino Latte Tea IceLatte]"), http.StatusBadRequest, "price must not be negative, category must be one of: [Espresso Cappuccino Latte Tea IceLatte]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := serveError(t, tc.err)
			if status != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, status)
			}
			if msg != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}

// Internal causes must never leak to the client.
func TestErrorHandler_UnexpectedError(t *testing.T) {
	status, msg := serveError(t, errors.New("mongo: connection refused to 10.0.0.5"))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if msg != "Server error" {
		t.Fatalf("internal details leaked: %q", msg)
	}
}

func TestErrorHandler_UnmatchedRoute(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Message != "Not Found - /api/nope" {
		t.Fatalf("expected path in message, got %q", body.Message)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	status, msg := serveError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if msg != "invalid payload" {
		t.Fatalf("expected %q, got %q", "invalid payload", msg)
	}
}
