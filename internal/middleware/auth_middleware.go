package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nkurunziza/erinda/internal/app/models"
	"github.com/nkurunziza/erinda/internal/app/models/dto"
	"github.com/nkurunziza/erinda/internal/pkg/auth"
)

// Context keys set by the authentication gate
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextRole     = "role"
)

// AuthMiddleware is the authentication gate for protected routes
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth verifies the bearer token on incoming requests. A missing
// token is unauthenticated (401); a present but invalid or expired one
// is forbidden (403). On success the decoded identity is attached to
// the request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Token missing"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Token missing"))
			return
		}

		claims, err := m.jwtService.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Invalid or expired token"))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// PrivilegedOnly restricts a route to the privileged role set. It must
// run after JWTAuth. This is the single role gate; handlers never
// compare role strings themselves.
func (m *AuthMiddleware) PrivilegedOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Token missing"))
			return
		}

		roleStr, ok := role.(string)
		if !ok || !models.Role(roleStr).IsPrivileged() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Insufficient permissions"))
			return
		}

		c.Next()
	}
}

// Identity reads the decoded token identity attached by JWTAuth.
func Identity(c *gin.Context) (userID int64, username string, role models.Role) {
	if v, ok := c.Get(ContextUserID); ok {
		userID, _ = v.(int64)
	}
	if v, ok := c.Get(ContextUsername); ok {
		username, _ = v.(string)
	}
	if v, ok := c.Get(ContextRole); ok {
		if s, sok := v.(string); sok {
			role = models.Role(s)
		}
	}
	return userID, username, role
}
