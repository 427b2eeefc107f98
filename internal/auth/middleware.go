package auth

import (
	"net/http"
	"strings"

	"rental-inventory-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the middleware and read by handlers.
const (
	ContextUserID = "user_id"
	ContextOrgID  = "organization_id"
	ContextRole   = "role"
	ContextClaims = "auth_claims"
)

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates JWT tokens and sets the caller context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthorized", "message": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthorized", "message": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthorized", "message": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextOrgID, claims.OrganizationID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// RequireAdmin allows only callers with the admin role. It must run after
// RequireAuth.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := RoleFromContext(c)
		if !ok || role != models.UserRoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"code": "forbidden", "message": "admin role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OrgFromContext extracts the caller's organization id set by RequireAuth.
func OrgFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextOrgID)
	if !exists {
		return uuid.Nil, false
	}
	orgID, ok := value.(uuid.UUID)
	return orgID, ok
}

// UserFromContext extracts the caller's user id set by RequireAuth.
func UserFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// RoleFromContext extracts the caller's role set by RequireAuth.
func RoleFromContext(c *gin.Context) (models.UserRole, bool) {
	value, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}
	role, ok := value.(models.UserRole)
	return role, ok
}
