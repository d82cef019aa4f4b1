// Package middleware holds gin middleware shared across the HTTP layer.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Logging emits one structured log line per request, in the shape
// artpromedia-ubi's services configure zerolog for their HTTP entry points
// (console-writer in development, JSON lines otherwise), adapted to a gin
// middleware instead of chi's.
func Logging(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request handled")
	}
}
