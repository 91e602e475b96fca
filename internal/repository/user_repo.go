package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"studioreserve/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type UserFilter struct {
	Role   *domain.Role
	Limit  int
	Offset int
}

func normalizeUsername(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Username = normalizeUsername(u.Username)
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("username = ?", normalizeUsername(username)).
		First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context, f UserFilter) ([]domain.User, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{})
	if f.Role != nil {
		q = q.Where("role = ?", string(*f.Role))
	}

	var users []domain.User
	err := q.Order("id").
		Limit(clampLimit(f.Limit)).
		Offset(max(f.Offset, 0)).
		Find(&users).Error
	return users, err
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 100
	}
	if limit > 500 {
		return 500
	}
	return limit
}
