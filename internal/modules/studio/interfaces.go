package studio

import (
	"context"

	"studioreserve/internal/domain"
	"studioreserve/internal/repository"
)

type StudioRepository interface {
	List(ctx context.Context, f repository.StudioFilters) ([]domain.Studio, error)
	GetByID(ctx context.Context, id int64) (*domain.Studio, error)
	Create(ctx context.Context, studio *domain.Studio) error
	Update(ctx context.Context, studio *domain.Studio) error
	Delete(ctx context.Context, id int64) error
}

type EmployeeRepository interface {
	Create(ctx context.Context, se *domain.StudioEmployee) error
	GetByID(ctx context.Context, id int64) (*domain.StudioEmployee, error)
	ListByStudio(ctx context.Context, studioID int64) ([]domain.StudioEmployee, error)
	Delete(ctx context.Context, id int64) error
}

// Authorizer is implemented by access.Partitioner.
type Authorizer interface {
	AuthorizeAssign(ctx context.Context, caller domain.Caller, studioID, employeeID int64) error
	AuthorizeStudioManagement(ctx context.Context, caller domain.Caller, studioID int64) (*domain.Studio, error)
	AuthorizeEmployeeListing(ctx context.Context, caller domain.Caller, studioID int64) (*domain.Studio, error)
}
