package access

import (
	"context"

	"studioreserve/internal/domain"
	"studioreserve/internal/repository"
)

type StudioReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Studio, error)
	ListIDsByOwner(ctx context.Context, ownerID int64) ([]int64, error)
}

// AssignmentReader returns domain.ErrNotFound for an unassigned user.
type AssignmentReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.StudioEmployee, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type ReservationLister interface {
	List(ctx context.Context, scope repository.ReservationScope, f repository.ReservationFilter) ([]domain.Reservation, error)
}
