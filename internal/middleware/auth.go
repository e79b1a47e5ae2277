// Package middleware provides the gin middleware guarding protected routes.
package middleware

import (
	"net/http"
	"strings"

	"github.com/craftkart/storefront-api/internal/auth"
	"github.com/craftkart/storefront-api/internal/services"
	"github.com/gin-gonic/gin"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

func abortWith(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message},
	})
}

// Auth verifies the Bearer token and stores the caller identity on the
// context. When the site is in maintenance mode, only administrators pass.
func Auth(settings *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, http.StatusUnauthorized, "unauthenticated", "authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWith(c, http.StatusUnauthorized, "unauthenticated", "invalid token format (must be Bearer)")
			return
		}

		ident, err := auth.ValidateToken(parts[1])
		if err != nil {
			abortWith(c, http.StatusUnauthorized, "unauthenticated", "invalid or expired token")
			return
		}

		if settings != nil && settings.MaintenanceMode(c.Request.Context()) && ident.Role != "administrator" {
			abortWith(c, http.StatusServiceUnavailable, "internal", "the store is currently under maintenance, please try again later")
			return
		}

		c.Set(ContextUserID, ident.UserID)
		c.Set(ContextRole, ident.Role)
		c.Next()
	}
}

// AdminOnly allows only administrators through. The role is re-verified
// against the users table rather than trusted from the token, so a role
// change takes effect before the token expires.
func AdminOnly(users services.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		if userID == "" {
			abortWith(c, http.StatusUnauthorized, "unauthenticated", "authentication required")
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			abortWith(c, http.StatusInternalServerError, "internal", "failed to verify privileges")
			return
		}
		if user == nil || user.Role != "administrator" {
			abortWith(c, http.StatusForbidden, "permission-denied", "administrator privileges required")
			return
		}

		c.Next()
	}
}
