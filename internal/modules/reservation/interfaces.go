package reservation

import (
	"context"

	"studioreserve/internal/domain"
	"studioreserve/internal/repository"
)

// Authorizer is the access-partitioning side the service consults first.
type Authorizer interface {
	VisibleReservations(ctx context.Context, caller domain.Caller, f repository.ReservationFilter) ([]domain.Reservation, error)
	AuthorizeObject(ctx context.Context, caller domain.Caller, r *domain.Reservation) error
}

// Admitter enforces the daily studio quota on writes.
type Admitter interface {
	Admit(ctx context.Context, d Draft) (*domain.Reservation, error)
	Readmit(ctx context.Context, id int64, d Draft) (*domain.Reservation, error)
}

type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
