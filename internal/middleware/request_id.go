package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nanoclaw-bridges/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's if present.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
