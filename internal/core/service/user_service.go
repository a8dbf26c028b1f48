package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/brewhouse/coffee-shop-api/internal/core/domain"
	"github.com/brewhouse/coffee-shop-api/internal/core/ports"
)

// UserService implements profile operations for the authenticated identity.
// The user id always comes from verified token claims, never from the
// request body or path, so a caller can only touch its own record.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile merges the provided fields into the user's record.
// Provided fields must be non-empty; absent fields are left untouched.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch ports.UserPatch) (*domain.User, error) {
	if patch.Username != nil && *patch.Username == "" {
		return nil, domain.ErrMissingFields
	}
	if patch.Email != nil && *patch.Email == "" {
		return nil, domain.ErrMissingFields
	}
	if patch.Username == nil && patch.Email == nil {
		return s.repo.FindByID(ctx, userID)
	}

	updated, err := s.repo.UpdateProfile(ctx, userID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}
