// Package access decides what a caller may see and change, based on the
// caller's role and the studio relationships stored for them.
package access

import (
	"context"
	"errors"

	"studioreserve/internal/domain"
	"studioreserve/internal/pkg/logger"
	"studioreserve/internal/repository"
)

type Partitioner struct {
	studios      StudioReader
	assignments  AssignmentReader
	users        UserReader
	reservations ReservationLister
}

func NewPartitioner(
	studios StudioReader,
	assignments AssignmentReader,
	users UserReader,
	reservations ReservationLister,
) *Partitioner {
	return &Partitioner{
		studios:      studios,
		assignments:  assignments,
		users:        users,
		reservations: reservations,
	}
}

// Scope computes the reservation subset visible to caller. An employee
// without a studio and an owner without studios get an empty scope.
func (p *Partitioner) Scope(ctx context.Context, caller domain.Caller) (repository.ReservationScope, error) {
	switch caller.Role {
	case domain.RoleCustomer:
		return repository.ReservationScope{CustomerID: caller.UserID}, nil

	case domain.RoleEmployee:
		studioID, err := p.assignedStudio(ctx, caller.UserID)
		if err != nil {
			return repository.ReservationScope{}, err
		}
		if studioID == 0 {
			return repository.ReservationScope{}, nil
		}
		return repository.ReservationScope{StudioIDs: []int64{studioID}}, nil

	case domain.RoleStudioOwner:
		ids, err := p.studios.ListIDsByOwner(ctx, caller.UserID)
		if err != nil {
			return repository.ReservationScope{}, err
		}
		return repository.ReservationScope{StudioIDs: ids}, nil
	}

	return repository.ReservationScope{}, domain.ErrNoRoleAssigned
}

func (p *Partitioner) VisibleReservations(ctx context.Context, caller domain.Caller, f repository.ReservationFilter) ([]domain.Reservation, error) {
	scope, err := p.Scope(ctx, caller)
	if err != nil {
		return nil, err
	}
	if scope.Empty() {
		return []domain.Reservation{}, nil
	}
	return p.reservations.List(ctx, scope, f)
}

// AuthorizeObject checks a single reservation, persisted or about to be
// written, against the caller.
func (p *Partitioner) AuthorizeObject(ctx context.Context, caller domain.Caller, r *domain.Reservation) error {
	allowed, err := p.canAccess(ctx, caller, r)
	if err != nil {
		return err
	}
	if !allowed {
		logger.FromContext(ctx).Debug().
			Int64("user_id", caller.UserID).
			Str("role", string(caller.Role)).
			Int64("reservation_id", r.ID).
			Int64("studio_id", r.StudioID).
			Msg("reservation access denied")
		return domain.ErrNotPermitted
	}
	return nil
}

func (p *Partitioner) canAccess(ctx context.Context, caller domain.Caller, r *domain.Reservation) (bool, error) {
	switch caller.Role {
	case domain.RoleCustomer:
		return r.CustomerID == caller.UserID, nil

	case domain.RoleEmployee:
		studioID, err := p.assignedStudio(ctx, caller.UserID)
		if err != nil {
			return false, err
		}
		return studioID != 0 && studioID == r.StudioID, nil

	case domain.RoleStudioOwner:
		studio, err := p.studios.GetByID(ctx, r.StudioID)
		if err != nil {
			return false, err
		}
		return studio.OwnerID == caller.UserID, nil
	}
	return false, nil
}

// AuthorizeAssign allows linking employeeID to studioID. The caller must own
// the studio and the employee must not work anywhere yet.
func (p *Partitioner) AuthorizeAssign(ctx context.Context, caller domain.Caller, studioID, employeeID int64) error {
	studio, err := p.studios.GetByID(ctx, studioID)
	if err != nil {
		return err
	}
	if studio.OwnerID != caller.UserID {
		return domain.ErrNotStudioOwner
	}

	user, err := p.users.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleEmployee {
		return domain.ErrNotEmployee
	}

	existing, err := p.assignedStudio(ctx, employeeID)
	if err != nil {
		return err
	}
	if existing != 0 {
		return domain.ErrAlreadyAssigned
	}
	return nil
}

// AuthorizeStudioManagement returns the studio if caller owns it.
func (p *Partitioner) AuthorizeStudioManagement(ctx context.Context, caller domain.Caller, studioID int64) (*domain.Studio, error) {
	studio, err := p.studios.GetByID(ctx, studioID)
	if err != nil {
		return nil, err
	}
	if studio.OwnerID != caller.UserID {
		return nil, domain.ErrNotStudioOwner
	}
	return studio, nil
}

// AuthorizeEmployeeListing requires an explicit studio the caller owns.
// studioID == 0 means the scope was not given and permission is refused.
func (p *Partitioner) AuthorizeEmployeeListing(ctx context.Context, caller domain.Caller, studioID int64) (*domain.Studio, error) {
	if studioID == 0 || caller.Role != domain.RoleStudioOwner {
		return nil, domain.ErrNotStudioOwner
	}
	studio, err := p.AuthorizeStudioManagement(ctx, caller, studioID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotStudioOwner
	}
	return studio, err
}

// assignedStudio returns 0 when the user has no assignment.
func (p *Partitioner) assignedStudio(ctx context.Context, userID int64) (int64, error) {
	se, err := p.assignments.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return se.StudioID, nil
}
