package httpserver

import (
	"github.com/gin-gonic/gin"

	"nanoclaw-bridges/pkg/response"
)

// Health response constants (single source for service identity).
const (
	ServiceName = "bookmark-relay"
	StatusOK    = "ok"
)

// relayHealth reports the relay's own status without touching the sandbox.
// @Summary Relay health
// @Description Static status of the relay process; does not call the sandbox.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Relay is up"
// @Router /relay-health [get]
func (srv HTTPServer) relayHealth(c *gin.Context) {
	response.OK(c, gin.H{
		"status":              StatusOK,
		"relay":               ServiceName,
		"port":                srv.port,
		"jibrain_extractions": srv.intakeDir,
	})
}
