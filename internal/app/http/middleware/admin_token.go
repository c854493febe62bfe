package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"portfolio-backend/config"

	"github.com/gin-gonic/gin"
)

// RequireAdminToken gates mutating routes behind the shared admin secret.
// The Authorization header may carry the token bare or with a "Bearer "
// prefix; the comparison is exact, constant-time string equality.
func RequireAdminToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.ADMIN_TOKEN
		if secret == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin token not configured"})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
