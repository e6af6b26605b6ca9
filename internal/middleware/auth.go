package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wavely/wavely-backend/internal/common"
	"github.com/wavely/wavely-backend/pkg/jwt"
	"github.com/wavely/wavely-backend/pkg/session"
)

// JWTAuth validates the Authorization bearer token and stores the claims in
// the request context. sessions may be nil; revocation checks are skipped then.
func JWTAuth(jwtManager *jwt.Manager, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.ErrorResponse(c, http.StatusUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}
		tokenString := parts[1]

		if sessions != nil {
			revoked, err := sessions.IsRevoked(c.Request.Context(), tokenString)
			if err == nil && revoked {
				common.ErrorResponse(c, http.StatusUnauthorized, "token revoked")
				c.Abort()
				return
			}
		}

		claims, err := jwtManager.VerifyAccessToken(tokenString)
		if err != nil {
			common.ErrorResponse(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("isAdmin", claims.IsAdmin)
		c.Set("token", tokenString)

		c.Next()
	}
}

// GetUserID extracts the authenticated user ID from context
func GetUserID(c *gin.Context) uint {
	value, exists := c.Get("userID")
	if !exists {
		return 0
	}
	if id, ok := value.(uint); ok {
		return id
	}
	return 0
}

// GetToken extracts the raw bearer token from context
func GetToken(c *gin.Context) string {
	value, exists := c.Get("token")
	if !exists {
		return ""
	}
	if token, ok := value.(string); ok {
		return token
	}
	return ""
}
