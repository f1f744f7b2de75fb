package middleware

import (
	"context"  // Context for the authenticator
	"errors"   // Error kinds
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"bet_wallet/internal/domain" // Error kinds

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// UserIDKey is the gin context key holding the authenticated user id
const UserIDKey = "userID"

// Authenticator maps a bearer token to a user id
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uint, error)
}

// JWTAuthMiddleware validates bearer tokens and stores the user id in the context
func JWTAuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauth"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		userID, err := auth.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthorized) {
				// Storage failure while resolving the user
				logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("Authentication failed")
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "transient"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauth"})
			return
		}
		c.Set(UserIDKey, userID) // Store userID in context
		c.Next()
	}
}

// UserID returns the id stored by JWTAuthMiddleware
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
