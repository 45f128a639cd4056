package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jetcongo/backend/internal/domain/identity"
)

// RequireRole aborts with 403 unless the authenticated user carries the role.
// It must run after JWTAuthMiddleware.
func RequireRole(role identity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := GetJWTRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			return
		}

		if current != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ERR_FORBIDDEN",
					"message": "Insufficient role for this operation",
				},
			})
			return
		}

		c.Next()
	}
}

// RequireAgent guards back-office routes
func RequireAgent() gin.HandlerFunc {
	return RequireRole(identity.RoleAgent)
}
