package service

import (
	"context"
	"fmt"

	"mwell-store/internal/model"
	"mwell-store/internal/repository"

	"github.com/rs/zerolog"
)

type userService struct {
	users  repository.UserRepository
	logger zerolog.Logger
}

// NewUserService creates the account listing service.
func NewUserService(users repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		users:  users,
		logger: logger.With().Str("service", "user").Logger(),
	}
}

// List returns accounts with the same paging defaults as products.
func (s *userService) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Int("limit", limit).Int("offset", offset).Msg("failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
