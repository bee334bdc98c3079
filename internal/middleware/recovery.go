package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"nanoclaw-bridges/pkg/response"
)

// Recovery turns a panic inside a handler into 502 {"error": ...}.
func (mw Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := fmt.Errorf("%v", recovered)
		mw.l.Errorf(c.Request.Context(), "internal.middleware.Recovery: panic: %v", err)
		response.Error(c, http.StatusBadGateway, err)
	})
}
