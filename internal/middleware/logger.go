package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adventureworks/enterprise-api/pkg/logger"
)

// RequestLogger emits one structured entry per request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	l := log.WithComponent("http")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		event := l.Zerolog().Info()
		if c.Writer.Status() >= 500 {
			event = l.Zerolog().Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString("request_id")).
			Msg("request")
	}
}
