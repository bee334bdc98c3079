package http

import (
	"github.com/gin-gonic/gin"

	"nanoclaw-bridges/internal/bookmark"
	"nanoclaw-bridges/pkg/log"
)

// Handler is the public interface for the bookmark relay HTTP delivery layer.
type Handler interface {
	Health(c *gin.Context)
	Recent(c *gin.Context)
	Intake(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc bookmark.UseCase
}

// New creates a new HTTP handler for the bookmark relay.
func New(l log.Logger, uc bookmark.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
