package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/steven-the-qa/coach-wire/internal/domain/user"
	"github.com/steven-the-qa/coach-wire/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxIdentityKey = "identity"

// AuthMiddleware validates bearer tokens minted by the external identity
// provider and trusts their claims; it never checks credentials itself.
type AuthMiddleware struct {
	verifier *jwt.Verifier
}

func NewAuthMiddleware(verifier *jwt.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.verifier.VerifyToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		ident, err := user.NewIdentity(claims.UserID, user.Role(claims.Role))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxIdentityKey, ident)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole, ok := GetUserRole(c)
		if !ok {
			// Unexpected: must be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if callerRole != role {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetIdentity(c *gin.Context) (user.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return user.Identity{}, false
	}

	ident, ok := v.(user.Identity)
	return ident, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	ident, ok := GetIdentity(c)
	if !ok {
		return uuid.Nil, false
	}
	return ident.ID(), true
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	ident, ok := GetIdentity(c)
	if !ok {
		return "", false
	}
	return ident.Role(), true
}
