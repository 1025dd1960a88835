package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"require-checklist/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's or a GitHub
// delivery id when present, and stores it on the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = c.GetHeader("X-GitHub-Delivery")
		}
		if id == "" {
			id = uuid.NewString()
		}

		ctx := log.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}

// AccessLog logs method, path, status and latency of each request.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		m.l.Debugf(c.Request.Context(), "%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
