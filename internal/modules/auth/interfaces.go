package auth

import (
	"context"

	"studioreserve/internal/domain"
	"studioreserve/internal/pkg/jwt"
	"studioreserve/internal/repository"
)

// UserRepository is the subset of user storage the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, f repository.UserFilter) ([]domain.User, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
	GenerateRefreshToken(userID int64, role string) (string, error)
	ValidateRefreshToken(token string) (*jwt.Claims, error)
}
