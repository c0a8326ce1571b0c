package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Middleware verifies the Bearer session token and attaches the caller's
// identity to the request context.
func Middleware(sessionSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is empty"})
			c.Abort()
			return
		}

		ident, err := VerifySession(tokenString, sessionSecret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or malformed token"})
			}
			c.Abort()
			return
		}

		SetIdentity(c, *ident)
		c.Next()
	}
}

// RequireAdmin gates a route group behind the admin policy. Must run after
// Middleware.
func RequireAdmin(policy *AdminPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := GetIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		if decision := policy.Authorize(ident); !decision.Allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// SetIdentity stores the verified identity on the gin context. Exposed so
// handler tests can simulate an authenticated request.
func SetIdentity(c *gin.Context, ident Identity) {
	c.Set(identityKey, ident)
}

func GetIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}

	ident, ok := value.(Identity)
	if !ok {
		return Identity{}, false
	}

	return ident, true
}
