package middleware

import (
	"net/http"
	"strings"

	"canteen/internal/auth"
	"canteen/internal/models"
	"canteen/internal/redis"

	"github.com/gin-gonic/gin"
)

// IdentityKey is where RequireAuth stores the caller's identity in the gin
// context.
const IdentityKey = "identity"

// SessionReader is the slice of the Redis client the middleware needs.
type SessionReader interface {
	GetSession(sessionID string) (*redis.SessionData, error)
}

// RequireAuth validates the Bearer token and checks that its backing
// session is still alive, then stores the caller's identity for handlers.
func RequireAuth(jwtSecret string, sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := auth.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		session, err := sessions.GetSession(claims.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		c.Set(IdentityKey, models.Identity{Username: session.Username, Role: session.Role})
		c.Set(sessionIDKey, claims.ID)
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the authenticated caller is an admin.
// RequireAuth must run first.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := IdentityFrom(c)
		if !ok || !ident.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

const sessionIDKey = "session_id"

// IdentityFrom returns the identity stored by RequireAuth.
func IdentityFrom(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return models.Identity{}, false
	}
	ident, ok := v.(models.Identity)
	return ident, ok
}

// SessionIDFrom returns the session id of the presented token.
func SessionIDFrom(c *gin.Context) (string, bool) {
	v, ok := c.Get(sessionIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
