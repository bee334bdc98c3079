package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"nanoclaw-bridges/internal/bookmark"
	"nanoclaw-bridges/pkg/response"
)

// mapError translates use-case errors into HTTP responses. Caller input
// problems are 400; everything else came from the sandbox and is 502.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, bookmark.ErrInvalidJSON), errors.Is(err, bookmark.ErrMissingURL):
		response.BadRequest(c, err)
	default:
		response.BadGateway(c, err)
	}
}
