package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"mwell-store/internal/auth"
	"mwell-store/internal/model"
	"mwell-store/internal/notify"
	"mwell-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

type authService struct {
	users    repository.UserRepository
	tokens   *auth.TokenManager
	notifier notify.Notifier
	logger   zerolog.Logger
}

// NewAuthService creates the account service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, notifier notify.Notifier, logger zerolog.Logger) AuthService {
	return &authService{
		users:    users,
		tokens:   tokens,
		notifier: notifier,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates a USER account, sends the welcome email and signs the
// caller in.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if err := validateRegister(req); err != nil {
		return nil, err
	}

	user, err := s.createUser(ctx, strings.TrimSpace(req.Name), req.Email, req.Password, model.RoleUser)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.Welcome(ctx, user); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID.String()).Msg("failed to send welcome email")
	}

	return s.respond(user)
}

// Login checks credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if req == nil || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, model.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up user")
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	if user == nil {
		s.logger.Debug().Msg("login for unknown email")
		return nil, model.ErrInvalidCredentials
	}

	ok, err := auth.CheckPassword(user.PasswordHash, req.Password)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to check password")
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	if !ok {
		s.logger.Debug().Str("user_id", user.ID.String()).Msg("wrong password")
		return nil, model.ErrInvalidCredentials
	}

	return s.respond(user)
}

// EnsureAdmin creates the admin account if no user has the email yet.
func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		if existing.Role != model.RoleAdmin {
			s.logger.Warn().Str("email", email).Msg("admin email belongs to a non-admin account")
		}
		return nil
	}

	if _, err := s.createUser(ctx, "Administrator", email, password, model.RoleAdmin); err != nil {
		if errors.Is(err, model.ErrUserExists) {
			return nil
		}
		return err
	}

	s.logger.Info().Str("email", email).Msg("admin account created")
	return nil
}

func (s *authService) createUser(ctx context.Context, name, email, password, role string) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        strings.TrimSpace(email),
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrUserExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Str("role", role).Msg("user created")
	return user, nil
}

func (s *authService) respond(user *model.User) (*model.AuthResponse, error) {
	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID.String()).Msg("failed to issue token")
		return nil, err
	}
	return &model.AuthResponse{User: *user, AccessToken: token, ExpiresAt: expiresAt}, nil
}

func validateRegister(req *model.RegisterRequest) error {
	if req == nil {
		return model.NewValidationError("", "All required fields must be provided")
	}
	if strings.TrimSpace(req.Name) == "" {
		return model.NewValidationError("name", "Name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return model.NewValidationError("email", "Email is required")
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return model.NewValidationError("email", "Email address is invalid")
	}
	if len(req.Password) < MinPasswordLength {
		return model.NewValidationError("password", fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	}
	return nil
}
