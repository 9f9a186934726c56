package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "X-API-Key"

// APIKeyAuth gates requests behind a static API key. The comparison is
// constant-time so the key cannot be probed byte by byte.
func APIKeyAuth(key string) gin.HandlerFunc {
	expected := []byte(key)
	return func(c *gin.Context) {
		supplied := []byte(c.GetHeader(apiKeyHeader))
		if len(supplied) != len(expected) || subtle.ConstantTimeCompare(supplied, expected) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "invalid or missing API key",
			})
			return
		}
		c.Next()
	}
}
