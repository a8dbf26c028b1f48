package ports

import (
	"context"

	"github.com/brewhouse/coffee-shop-api/internal/core/domain"
)

// AuthService covers account creation and credential issuance.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed bearer token
	// alongside the public user record. A failed lookup and a failed
	// password comparison are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// UserService covers operations on the authenticated identity.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, patch UserPatch) (*domain.User, error)
}
