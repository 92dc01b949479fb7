package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"go-quote-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// AdminKeyMiddleware guards the admin read endpoints with a static service
// key. There are no user accounts in this system, so a bearer key carried by
// the internal dashboard is the whole auth story.
func AdminKeyMiddleware(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" {
			response.Error(c, http.StatusServiceUnavailable, "Admin access is not configured")
			c.Abort()
			return
		}

		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			response.Error(c, http.StatusUnauthorized, "Missing bearer token")
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(adminKey)) != 1 {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
			c.Abort()
			return
		}

		c.Next()
	}
}
