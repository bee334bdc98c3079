package http

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

// processIntakeReq reads the raw body. Validation happens in the use case so
// the exact bytes can be forwarded.
func (h *handler) processIntakeReq(c *gin.Context) (intakeReq, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return intakeReq{}, fmt.Errorf("failed to read request body: %w", err)
	}
	return intakeReq{body: body}, nil
}
