package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CacheControl marks GET responses as cacheable for maxAge seconds. The
// header is written before the handler runs because headers cannot change
// once the response body starts streaming.
func CacheControl(maxAge int) gin.HandlerFunc {
	value := "private, max-age=" + strconv.Itoa(maxAge)
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Header("Cache-Control", value)
		}
		c.Next()
	}
}
