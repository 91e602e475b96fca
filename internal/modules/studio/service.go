package studio

import (
	"context"
	"fmt"

	"studioreserve/internal/database"
	"studioreserve/internal/domain"
	"studioreserve/internal/pkg/logger"
	"studioreserve/internal/pkg/validator"
	"studioreserve/internal/repository"
)

type Service struct {
	studios       StudioRepository
	employees     EmployeeRepository
	access        Authorizer
	defaultMaxDay int
}

func NewService(studios StudioRepository, employees EmployeeRepository, access Authorizer, defaultMaxDay int) *Service {
	return &Service{
		studios:       studios,
		employees:     employees,
		access:        access,
		defaultMaxDay: defaultMaxDay,
	}
}

/* ---------- STUDIO ---------- */

func (s *Service) Create(ctx context.Context, caller domain.Caller, req CreateStudioRequest) (*domain.Studio, error) {
	if err := requireOwner(caller); err != nil {
		return nil, err
	}
	if fields := validator.Validate(req); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}

	studio := &domain.Studio{
		Name:               req.Name,
		OwnerID:            caller.UserID,
		MaxCustomersPerDay: s.defaultMaxDay,
	}
	if req.MaxCustomersPerDay != nil {
		studio.MaxCustomersPerDay = *req.MaxCustomersPerDay
	}

	if err := s.studios.Create(ctx, studio); err != nil {
		return nil, fmt.Errorf("create studio: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("studio_id", studio.ID).
		Int64("owner_id", studio.OwnerID).
		Int("max_customers_per_day", studio.MaxCustomersPerDay).
		Msg("studio created")
	return studio, nil
}

func (s *Service) List(ctx context.Context, q ListStudiosQuery) ([]domain.Studio, error) {
	if fields := validator.Validate(q); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}
	studios, err := s.studios.List(ctx, repository.StudioFilters{
		OwnerID: q.OwnerID,
		Limit:   q.Limit,
		Offset:  q.Offset,
	})
	if err != nil {
		return nil, err
	}
	if studios == nil {
		studios = []domain.Studio{}
	}
	return studios, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Studio, error) {
	return s.studios.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, caller domain.Caller, id int64, req UpdateStudioRequest) (*domain.Studio, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}

	studio, err := s.access.AuthorizeStudioManagement(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	studio.Name = req.Name
	studio.MaxCustomersPerDay = *req.MaxCustomersPerDay

	if err := s.studios.Update(ctx, studio); err != nil {
		return nil, fmt.Errorf("update studio: %w", err)
	}
	return studio, nil
}

// Delete removes the studio with its employee links and reservations.
func (s *Service) Delete(ctx context.Context, caller domain.Caller, id int64) error {
	if _, err := s.access.AuthorizeStudioManagement(ctx, caller, id); err != nil {
		return err
	}
	if err := s.studios.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Int64("studio_id", id).
		Int64("owner_id", caller.UserID).
		Msg("studio deleted")
	return nil
}

/* ---------- EMPLOYEES ---------- */

func (s *Service) AssignEmployee(ctx context.Context, caller domain.Caller, studioID, employeeID int64) (*domain.StudioEmployee, error) {
	if fields := validator.Validate(AssignEmployeeRequest{StudioID: studioID, UserID: employeeID}); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}
	if err := s.access.AuthorizeAssign(ctx, caller, studioID, employeeID); err != nil {
		return nil, err
	}

	se := &domain.StudioEmployee{UserID: employeeID, StudioID: studioID}
	if err := s.employees.Create(ctx, se); err != nil {
		// lost a race with a concurrent assignment
		if database.IsUniqueViolation(err) {
			return nil, domain.ErrAlreadyAssigned
		}
		return nil, fmt.Errorf("assign employee: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("studio_id", studioID).
		Int64("employee_id", employeeID).
		Msg("employee assigned")
	return se, nil
}

func (s *Service) ListEmployees(ctx context.Context, caller domain.Caller, studioID int64) ([]domain.StudioEmployee, error) {
	if _, err := s.access.AuthorizeEmployeeListing(ctx, caller, studioID); err != nil {
		return nil, err
	}
	rows, err := s.employees.ListByStudio(ctx, studioID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.StudioEmployee{}
	}
	return rows, nil
}

func (s *Service) RemoveEmployee(ctx context.Context, caller domain.Caller, assignmentID int64) error {
	se, err := s.employees.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if _, err := s.access.AuthorizeStudioManagement(ctx, caller, se.StudioID); err != nil {
		return err
	}
	return s.employees.Delete(ctx, se.ID)
}

func requireOwner(caller domain.Caller) error {
	switch caller.Role {
	case domain.RoleStudioOwner:
		return nil
	case domain.RoleNone:
		return domain.ErrNoRoleAssigned
	}
	return domain.ErrNotPermitted
}
