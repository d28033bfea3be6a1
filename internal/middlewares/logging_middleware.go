package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"rest-playground/internal/logger"
)

// RequestLogger emits one structured log line per handled request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
