package ports

import (
	"context"

	"github.com/brewhouse/coffee-shop-api/internal/core/domain"
)

// UserPatch carries a partial profile update. Nil fields are left untouched.
type UserPatch struct {
	Username *string
	Email    *string
}

// UserRepository defines persistence operations for user accounts.
// Implementations translate store-level failures (no document, duplicate
// key) into domain errors.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile applies the patch to the user's own record and returns
	// the updated document.
	UpdateProfile(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
}
