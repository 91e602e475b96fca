package repository

import (
	"context"

	"gorm.io/gorm"

	"studioreserve/internal/domain"
)

// ReservationScope restricts a listing to one customer or to a set of studios.
type ReservationScope struct {
	CustomerID int64
	StudioIDs  []int64
}

func (s ReservationScope) Empty() bool {
	return s.CustomerID == 0 && len(s.StudioIDs) == 0
}

type ReservationFilter struct {
	Date     string
	StudioID int64
	Limit    int
	Offset   int
}

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) WithTx(tx *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: tx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Create(res).Error
}

// Replace overwrites every mutable column of an existing reservation.
func (r *ReservationRepository) Replace(ctx context.Context, res *domain.Reservation) error {
	tx := r.db.WithContext(ctx).
		Model(res).
		Select("customer_id", "studio_id", "date", "time", "notes", "updated_at").
		Updates(res)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Reservation{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountForDay counts reservation rows for a studio on a date, leaving out
// excludeID when it is non-zero.
func (r *ReservationRepository) CountForDay(ctx context.Context, studioID int64, date string, excludeID int64) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("studio_id = ? AND date = ?", studioID, date)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return 0, err
	}
	return cnt, nil
}

func (r *ReservationRepository) List(ctx context.Context, scope ReservationScope, f ReservationFilter) ([]domain.Reservation, error) {
	if scope.Empty() {
		return []domain.Reservation{}, nil
	}

	q := r.db.WithContext(ctx).Model(&domain.Reservation{})
	if scope.CustomerID != 0 {
		q = q.Where("customer_id = ?", scope.CustomerID)
	}
	if len(scope.StudioIDs) > 0 {
		q = q.Where("studio_id IN ?", scope.StudioIDs)
	}
	if f.StudioID != 0 {
		q = q.Where("studio_id = ?", f.StudioID)
	}
	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}

	rows := []domain.Reservation{}
	err := q.Order("date, time, id").
		Limit(clampLimit(f.Limit)).
		Offset(max(f.Offset, 0)).
		Find(&rows).Error
	return rows, err
}
