package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/brewhouse/coffee-shop-api/internal/api/middleware"
	"github.com/brewhouse/coffee-shop-api/internal/core/domain"
	"github.com/brewhouse/coffee-shop-api/internal/core/ports"
)

type stubUserService struct {
	profileFn func(ctx context.Context, userID string) (*domain.User, error)
	updateFn  func(ctx context.Context, userID string, patch ports.UserPatch) (*domain.User, error)
}

func (s *stubUserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.profileFn(ctx, userID)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, userID string, patch ports.UserPatch) (*domain.User, error) {
	return s.updateFn(ctx, userID, patch)
}

func TestUserHandler_Profile(t *testing.T) {
	stub := &stubUserService{
		profileFn: func(ctx context.Context, userID string) (*domain.User, error) {
			if userID != "u1" {
				t.Fatalf("expected identity from context, got %q", userID)
			}
			return &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com", Role: domain.RoleUser}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(t, http.MethodGet, "/api/users/profile", "")
	c.Set(middleware.ContextUserID, "u1")
	c.Set(middleware.ContextRole, domain.RoleUser)

	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["message"] != "Profile retrieved" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

// Without the auth middleware having run, the handler must refuse before
// touching the service.
func TestUserHandler_Profile_NoIdentity(t *testing.T) {
	stub := &stubUserService{
		profileFn: func(ctx context.Context, userID string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newJSONContext(t, http.MethodGet, "/api/users/profile", "")
	if err := h.Profile(c); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestUserHandler_UpdateProfile_PartialPatch(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, userID string, patch ports.UserPatch) (*domain.User, error) {
			if userID != "u1" {
				t.Fatalf("expected identity from context, got %q", userID)
			}
			if patch.Username == nil || *patch.Username != "newname" {
				t.Fatalf("expected username patch, got %+v", patch)
			}
			if patch.Email != nil {
				t.Fatalf("unspecified email must stay nil")
			}
			return &domain.User{ID: "u1", Username: "newname", Email: "alice@example.com"}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(t, http.MethodPut, "/api/users/profile", `{"username":"newname"}`)
	c.Set(middleware.ContextUserID, "u1")
	c.Set(middleware.ContextRole, domain.RoleUser)

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["message"] != "Profile updated" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestUserHandler_UpdateProfile_BadEmail(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, userID string, patch ports.UserPatch) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newJSONContext(t, http.MethodPut, "/api/users/profile", `{"email":"nope"}`)
	c.Set(middleware.ContextUserID, "u1")
	c.Set(middleware.ContextRole, domain.RoleUser)

	err := h.UpdateProfile(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
