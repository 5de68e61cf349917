package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Logger logs the request method, path, client IP, status code and latency,
// tagging each request with an X-Request-ID.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		user := "-"
		if p, ok := GetPrincipal(c); ok {
			user = fmt.Sprintf("%s:%d", p.Role, p.UserID)
		}
		log.Printf(
			"[%s] %s %s %d %s user=%s req=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start),
			user,
			requestID,
		)
	}
}
