package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studioreserve/internal/domain"
	"studioreserve/internal/pkg/logger"
)

type errorMapping struct {
	err     error
	status  int
	code    string
	message string
}

var mappings = []errorMapping{
	{domain.ErrCapacityExceeded, http.StatusConflict, "CAPACITY_EXCEEDED", "Studio is fully booked for this date"},
	{domain.ErrSlotTaken, http.StatusConflict, "SLOT_TAKEN", "This time slot is already reserved"},
	{domain.ErrAlreadyAssigned, http.StatusConflict, "ALREADY_ASSIGNED", "Employee is already assigned to a studio"},
	{domain.ErrNoRoleAssigned, http.StatusForbidden, "NO_ROLE_ASSIGNED", "User has no role assigned"},
	{domain.ErrNotPermitted, http.StatusForbidden, "NOT_PERMITTED", "You do not have permission to perform this action"},
	{domain.ErrNotStudioOwner, http.StatusForbidden, "NOT_STUDIO_OWNER", "You don't own this studio"},
	{domain.ErrNotEmployee, http.StatusUnprocessableEntity, "NOT_EMPLOYEE", "User is not an employee"},
	{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "Resource not found"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect username or password"},
}

// FromError writes the envelope for a domain error. Anything unrecognised is
// logged and reported as an opaque internal error.
func FromError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request", verr.Fields)
		return
	}
	if errors.Is(err, domain.ErrValidation) {
		Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
		return
	}

	for _, m := range mappings {
		if errors.Is(err, m.err) {
			Error(c, m.status, m.code, m.message)
			return
		}
	}

	logger.FromContext(c.Request.Context()).Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("internal error")
	_ = c.Error(err)
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}
