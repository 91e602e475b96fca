package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studioreserve/internal/domain"
)

type StudioFilters struct {
	OwnerID int64
	Limit   int
	Offset  int
}

type StudioRepository struct {
	db *gorm.DB
}

func NewStudioRepository(db *gorm.DB) *StudioRepository {
	return &StudioRepository{db: db}
}

func (r *StudioRepository) WithTx(tx *gorm.DB) *StudioRepository {
	return &StudioRepository{db: tx}
}

func (r *StudioRepository) List(ctx context.Context, f StudioFilters) ([]domain.Studio, error) {
	q := r.db.WithContext(ctx).Model(&domain.Studio{})
	if f.OwnerID != 0 {
		q = q.Where("owner_id = ?", f.OwnerID)
	}

	var studios []domain.Studio
	err := q.Order("id").
		Limit(clampLimit(f.Limit)).
		Offset(max(f.Offset, 0)).
		Find(&studios).Error
	return studios, err
}

func (r *StudioRepository) GetByID(ctx context.Context, id int64) (*domain.Studio, error) {
	var studio domain.Studio
	if err := r.db.WithContext(ctx).First(&studio, id).Error; err != nil {
		return nil, translate(err)
	}
	return &studio, nil
}

// GetByIDForUpdate row-locks the studio until the surrounding transaction
// ends. The SQLite dialect drops the locking clause.
func (r *StudioRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Studio, error) {
	var studio domain.Studio
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&studio, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &studio, nil
}

func (r *StudioRepository) ListIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&domain.Studio{}).
		Where("owner_id = ?", ownerID).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *StudioRepository) Create(ctx context.Context, studio *domain.Studio) error {
	return r.db.WithContext(ctx).Create(studio).Error
}

func (r *StudioRepository) Update(ctx context.Context, studio *domain.Studio) error {
	return r.db.WithContext(ctx).
		Model(studio).
		Select("name", "max_customers_per_day", "updated_at").
		Updates(studio).Error
}

// Delete removes the studio together with its employee links and
// reservations, independent of whether the store enforces ON DELETE CASCADE.
func (r *StudioRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("studio_id = ?", id).Delete(&domain.Reservation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("studio_id = ?", id).Delete(&domain.StudioEmployee{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Studio{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
