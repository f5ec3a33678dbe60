package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDContextKey is the gin context key carrying the request id.
const RequestIDContextKey = "request_id"

// RequestIDHeader is echoed back to the caller.
const RequestIDHeader = "X-Request-Id"

// RequestID assigns every request a unique id, reusing the caller's
// header when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDContextKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
