package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studioreserve/internal/domain"
	"studioreserve/internal/pkg/response"
)

// RequireRole ensures that the authenticated user has one of the given roles
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ctxRole); !exists {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}

		caller := Caller(c)
		if caller.Role == domain.RoleNone {
			response.Abort(c, http.StatusForbidden, "NO_ROLE_ASSIGNED", "User has no role assigned")
			return
		}
		for _, r := range roles {
			if caller.Is(r) {
				c.Next()
				return
			}
		}

		response.Abort(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
	}
}

// OwnerOnly middleware requires the studio_owner role
func OwnerOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleStudioOwner)
}
