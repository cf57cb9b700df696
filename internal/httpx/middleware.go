package httpx

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxRequestID = "request_id"

// RequestID tags each request with an id, keeping one supplied by the
// caller so retried payment and status webhooks stay traceable.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ctxRequestID, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// RequestIDFrom returns the id the RequestID middleware assigned.
func RequestIDFrom(c *gin.Context) string { return c.GetString(ctxRequestID) }

// Logger writes one line per request. Server errors carry their own tag
// so they stand out when grepping logs.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		tag := "[http]"
		if status >= 500 {
			tag = "[http!]"
		}
		log.Printf("%s rid=%s %s %s status=%d size=%d ip=%s dur=%s",
			tag, RequestIDFrom(c), c.Request.Method, c.Request.URL.Path,
			status, c.Writer.Size(), c.ClientIP(), time.Since(start))
	}
}
