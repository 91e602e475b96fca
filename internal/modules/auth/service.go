package auth

import (
	"context"
	"errors"
	"fmt"

	"studioreserve/internal/database"
	"studioreserve/internal/domain"
	"studioreserve/internal/pkg/logger"
	"studioreserve/internal/pkg/password"
	"studioreserve/internal/pkg/validator"
	"studioreserve/internal/repository"
)

// Service is the identity provider: it registers users and issues the
// bearer tokens that carry their role.
type Service struct {
	users  UserRepository
	tokens TokenIssuer
}

type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

func NewService(users UserRepository, tokens TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register creates an active user. An explicit role wins over the legacy
// flags; the role never changes afterwards.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if fields := validator.Validate(req); fields != nil {
		if _, mismatch := fields["confirm_password"]; mismatch {
			fields["confirm_password"] = "Passwords do not match"
		}
		return nil, &domain.ValidationError{Fields: fields}
	}

	role := req.Role
	if role == domain.RoleNone {
		role = domain.RoleFromFlags(req.IsStudioOwner, req.IsEmployee, req.IsCustomer)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, domain.NewValidationError("username", "A user with that username already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", user.ID).
		Str("role", string(user.Role)).
		Msg("user registered")
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !user.IsActive || !password.Verify(req.Password, user.PasswordHash) {
		logger.FromContext(ctx).Debug().Int64("user_id", user.ID).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &LoginResult{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a refresh token for a new access token. The user must
// still exist and be active.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !user.IsActive {
		return "", domain.ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return access, nil
}

func (s *Service) Me(ctx context.Context, caller domain.Caller) (*domain.User, error) {
	return s.users.GetByID(ctx, caller.UserID)
}

func (s *Service) ListUsers(ctx context.Context, q ListUsersQuery) ([]domain.User, error) {
	if fields := validator.Validate(q); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}

	f := repository.UserFilter{Limit: q.Limit, Offset: q.Offset}
	if q.Role != "" {
		role := domain.Role(q.Role)
		f.Role = &role
	}

	users, err := s.users.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
