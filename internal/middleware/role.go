package middleware

import (
	"net/http"

	"frontdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures the authenticated staff user has the given role.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// ManagerOnly guards settings, catalog and staff administration.
func ManagerOnly() gin.HandlerFunc {
	return RequireRole("manager")
}
