package reservation

import (
	"context"
	"errors"
	"fmt"

	"studioreserve/internal/domain"
	"studioreserve/internal/pkg/logger"
	"studioreserve/internal/pkg/validator"
	"studioreserve/internal/repository"
)

// Service runs every write through the access partitioner first and the
// capacity guard second.
type Service struct {
	access       Authorizer
	guard        Admitter
	reservations ReservationRepository
	users        UserReader
}

func NewService(access Authorizer, guard Admitter, reservations ReservationRepository, users UserReader) *Service {
	return &Service{
		access:       access,
		guard:        guard,
		reservations: reservations,
		users:        users,
	}
}

func (s *Service) List(ctx context.Context, caller domain.Caller, q ListReservationsQuery) ([]domain.Reservation, error) {
	if fields := validator.Validate(q); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return s.access.VisibleReservations(ctx, caller, repository.ReservationFilter{
		Date:     q.Date,
		StudioID: q.StudioID,
		Limit:    q.Limit,
		Offset:   q.Offset,
	})
}

func (s *Service) Get(ctx context.Context, caller domain.Caller, id int64) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.access.AuthorizeObject(ctx, caller, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Create(ctx context.Context, caller domain.Caller, req CreateReservationRequest) (*domain.Reservation, error) {
	draft, err := s.draft(ctx, caller, req)
	if err != nil {
		return nil, err
	}
	if err := s.access.AuthorizeObject(ctx, caller, draft.reservation()); err != nil {
		return nil, err
	}

	r, err := s.guard.Admit(ctx, draft)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().
		Int64("reservation_id", r.ID).
		Int64("customer_id", r.CustomerID).
		Int64("studio_id", r.StudioID).
		Msg("reservation created")
	return r, nil
}

// Replace overwrites reservation id. The caller must be allowed to touch both
// the stored reservation and the replacement.
func (s *Service) Replace(ctx context.Context, caller domain.Caller, id int64, req ReplaceReservationRequest) (*domain.Reservation, error) {
	existing, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	draft, err := s.draft(ctx, caller, req)
	if err != nil {
		return nil, err
	}
	if err := s.access.AuthorizeObject(ctx, caller, draft.reservation()); err != nil {
		return nil, err
	}

	return s.guard.Readmit(ctx, existing.ID, draft)
}

func (s *Service) Delete(ctx context.Context, caller domain.Caller, id int64) error {
	r, err := s.Get(ctx, caller, id)
	if err != nil {
		return err
	}
	if err := s.reservations.Delete(ctx, r.ID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Int64("reservation_id", r.ID).
		Int64("user_id", caller.UserID).
		Msg("reservation deleted")
	return nil
}

// draft resolves the customer a request books for. Customers book for
// themselves; employees and owners book on behalf of an existing customer.
func (s *Service) draft(ctx context.Context, caller domain.Caller, req CreateReservationRequest) (Draft, error) {
	if fields := validator.Validate(req); fields != nil {
		return Draft{}, &domain.ValidationError{Fields: fields}
	}

	d := Draft{
		CustomerID: req.CustomerID,
		StudioID:   req.StudioID,
		Date:       req.Date,
		Time:       req.Time,
		Notes:      req.Notes,
	}

	switch caller.Role {
	case domain.RoleCustomer:
		if req.CustomerID != 0 && req.CustomerID != caller.UserID {
			return Draft{}, domain.ErrNotPermitted
		}
		d.CustomerID = caller.UserID
		return d, nil

	case domain.RoleEmployee, domain.RoleStudioOwner:
		if req.CustomerID == 0 {
			return Draft{}, domain.NewValidationError("customer_id", "customer_id is required")
		}
		u, err := s.users.GetByID(ctx, req.CustomerID)
		if errors.Is(err, domain.ErrNotFound) {
			return Draft{}, domain.NewValidationError("customer_id", "customer does not exist")
		}
		if err != nil {
			return Draft{}, fmt.Errorf("load customer: %w", err)
		}
		if u.Role != domain.RoleCustomer {
			return Draft{}, domain.NewValidationError("customer_id", "user is not a customer")
		}
		return d, nil
	}

	return Draft{}, domain.ErrNotPermitted
}
