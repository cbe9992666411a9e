package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"outfit-backend/internal/shared/server/respond"
)

const apiKeyHeader = "X-API-Key"

// APIKeyAuth validates the X-API-Key header on every request.
// The upstream backend is the only expected caller; a wrong or missing key
// is rejected with 403. When no key is configured in a dev-like environment
// the check is skipped so local runs work without secrets.
func APIKeyAuth(apiKey, env string) gin.HandlerFunc {
	configured := strings.TrimSpace(apiKey)
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}

		if configured == "" {
			if isDevLike(env) {
				c.Next()
				return
			}
			respond.Error(c, http.StatusForbidden, "forbidden", "API key not configured", nil)
			return
		}

		provided := strings.TrimSpace(c.GetHeader(apiKeyHeader))
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(configured)) != 1 {
			respond.Error(c, http.StatusForbidden, "forbidden", "invalid API key", nil)
			return
		}
		c.Next()
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
