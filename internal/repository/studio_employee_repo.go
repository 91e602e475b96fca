package repository

import (
	"context"

	"gorm.io/gorm"

	"studioreserve/internal/domain"
)

type StudioEmployeeRepository struct {
	db *gorm.DB
}

func NewStudioEmployeeRepository(db *gorm.DB) *StudioEmployeeRepository {
	return &StudioEmployeeRepository{db: db}
}

func (r *StudioEmployeeRepository) Create(ctx context.Context, se *domain.StudioEmployee) error {
	return r.db.WithContext(ctx).Create(se).Error
}

func (r *StudioEmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.StudioEmployee, error) {
	var se domain.StudioEmployee
	if err := r.db.WithContext(ctx).First(&se, id).Error; err != nil {
		return nil, translate(err)
	}
	return &se, nil
}

// GetByUserID returns the employee's single assignment, or domain.ErrNotFound.
func (r *StudioEmployeeRepository) GetByUserID(ctx context.Context, userID int64) (*domain.StudioEmployee, error) {
	var se domain.StudioEmployee
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&se).Error; err != nil {
		return nil, translate(err)
	}
	return &se, nil
}

func (r *StudioEmployeeRepository) ListByStudio(ctx context.Context, studioID int64) ([]domain.StudioEmployee, error) {
	var rows []domain.StudioEmployee
	err := r.db.WithContext(ctx).
		Where("studio_id = ?", studioID).
		Order("id").
		Find(&rows).Error
	return rows, err
}

func (r *StudioEmployeeRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.StudioEmployee{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
