package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studioreserve/internal/domain"
	"studioreserve/internal/pkg/jwt"
	"studioreserve/internal/pkg/logger"
	"studioreserve/internal/pkg/response"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// JWTAuth validates the bearer access token and stores user_id and role in
// the gin context.
func JWTAuth(tokens *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Abort(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			response.Abort(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be: Bearer <token>")
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)

		l := logger.FromContext(c.Request.Context()).With().
			Int64("user_id", claims.UserID).
			Str("role", claims.Role).
			Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), &l))

		c.Next()
	}
}

// Caller returns the authenticated identity. A request that never passed
// JWTAuth yields the zero Caller.
func Caller(c *gin.Context) domain.Caller {
	return domain.Caller{
		UserID: c.GetInt64(ctxUserID),
		Role:   domain.Role(c.GetString(ctxRole)),
	}
}
