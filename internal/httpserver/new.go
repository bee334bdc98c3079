package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	bookmarkHTTP "nanoclaw-bridges/internal/bookmark/delivery/http"
	"nanoclaw-bridges/internal/middleware"
	"nanoclaw-bridges/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Relay
	intakeDir       string
	bookmarkHandler bookmarkHTTP.Handler
	middleware      middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	IntakeDir       string
	BookmarkHandler bookmarkHTTP.Handler
	Middleware      middleware.Middleware
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		intakeDir:       cfg.IntakeDir,
		bookmarkHandler: cfg.BookmarkHandler,
		middleware:      cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.bookmarkHandler == nil {
		return errors.New("bookmark handler is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
