package domain

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrCapacityExceeded   = errors.New("studio has no capacity left for this date")
	ErrSlotTaken          = errors.New("slot is already reserved")
	ErrNoRoleAssigned     = errors.New("user has no role assigned")
	ErrNotPermitted       = errors.New("not permitted")
	ErrNotStudioOwner     = errors.New("caller does not own the studio")
	ErrAlreadyAssigned    = errors.New("employee is already assigned to a studio")
	ErrNotEmployee        = errors.New("user is not an employee")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries per-field messages and matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	return "validation error"
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
