package reservation

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"studioreserve/internal/database"
	"studioreserve/internal/domain"
	"studioreserve/internal/pkg/lock"
	"studioreserve/internal/pkg/logger"
	"studioreserve/internal/pkg/validator"
	"studioreserve/internal/repository"
)

// Draft is a reservation that has not been admitted yet.
type Draft struct {
	CustomerID int64   `json:"customer_id" validate:"required,gt=0"`
	StudioID   int64   `json:"studio_id" validate:"required,gt=0"`
	Date       string  `json:"date" validate:"required,slot_date"`
	Time       string  `json:"time" validate:"required,slot_time"`
	Notes      *string `json:"notes"`
}

func (d Draft) reservation() *domain.Reservation {
	return &domain.Reservation{
		CustomerID: d.CustomerID,
		StudioID:   d.StudioID,
		Date:       d.Date,
		Time:       d.Time,
		Notes:      d.Notes,
	}
}

// Guard admits reservations against studio.max_customers_per_day. The count
// and the write happen in one transaction, under a lock held for the
// (studio, date) pair and a row lock on the studio.
type Guard struct {
	db     *gorm.DB
	locker lock.Locker
}

func NewGuard(db *gorm.DB, locker lock.Locker) *Guard {
	return &Guard{db: db, locker: locker}
}

func (g *Guard) Admit(ctx context.Context, d Draft) (*domain.Reservation, error) {
	return g.admit(ctx, 0, d)
}

// Readmit replaces reservation id with d. The reservation being replaced does
// not count against the quota.
func (g *Guard) Readmit(ctx context.Context, id int64, d Draft) (*domain.Reservation, error) {
	if id <= 0 {
		return nil, domain.ErrNotFound
	}
	return g.admit(ctx, id, d)
}

func (g *Guard) admit(ctx context.Context, replaceID int64, d Draft) (*domain.Reservation, error) {
	d, err := normalizeDraft(d)
	if err != nil {
		return nil, err
	}

	release, err := g.locker.Acquire(ctx, dayKey(d.StudioID, d.Date))
	if err != nil {
		return nil, fmt.Errorf("acquire admission lock: %w", err)
	}
	defer release()

	log := logger.FromContext(ctx).With().
		Int64("studio_id", d.StudioID).
		Str("date", d.Date).
		Str("time", d.Time).
		Logger()

	var admitted *domain.Reservation
	err = g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		studios := repository.NewStudioRepository(tx)
		reservations := repository.NewReservationRepository(tx)

		studio, err := studios.GetByIDForUpdate(ctx, d.StudioID)
		if err != nil {
			return err
		}

		count, err := reservations.CountForDay(ctx, d.StudioID, d.Date, replaceID)
		if err != nil {
			return fmt.Errorf("count reservations: %w", err)
		}

		if count+1 > int64(studio.MaxCustomersPerDay) {
			log.Info().
				Int64("count", count).
				Int("max", studio.MaxCustomersPerDay).
				Msg("reservation rejected: capacity exceeded")
			return domain.ErrCapacityExceeded
		}

		r := d.reservation()
		r.ID = replaceID
		if replaceID == 0 {
			err = reservations.Create(ctx, r)
		} else {
			err = reservations.Replace(ctx, r)
		}
		if database.IsUniqueViolation(err) {
			log.Info().Msg("reservation rejected: slot taken")
			return domain.ErrSlotTaken
		}
		if err != nil {
			return err
		}

		admitted, err = reservations.GetByID(ctx, r.ID)
		if err != nil {
			return err
		}

		log.Debug().
			Int64("reservation_id", admitted.ID).
			Int64("count", count+1).
			Int("max", studio.MaxCustomersPerDay).
			Msg("reservation admitted")
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("admit reservation: %w", err)
	}
	return admitted, nil
}

func normalizeDraft(d Draft) (Draft, error) {
	if fields := validator.Validate(d); fields != nil {
		return d, &domain.ValidationError{Fields: fields}
	}
	d.Time, _ = validator.NormalizeTime(d.Time)
	return d, nil
}

func dayKey(studioID int64, date string) string {
	return fmt.Sprintf("studio:%d:%s", studioID, date)
}

func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrCapacityExceeded) ||
		errors.Is(err, domain.ErrSlotTaken) ||
		errors.Is(err, domain.ErrNotFound)
}
