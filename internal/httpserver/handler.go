package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	bookmarkHTTP "nanoclaw-bridges/internal/bookmark/delivery/http"
	"nanoclaw-bridges/pkg/response"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()

	srv.gin.NoRoute(response.NotFound)
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		srv.middleware.Recovery(),
		srv.middleware.RequestID(),
		srv.requestLogger(),
		srv.middleware.CORS(),
	)

	srv.l.Infof(context.Background(), "HTTP middlewares registered (environment: %s)", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/relay-health", srv.relayHealth)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the bookmark relay routes.
func (srv HTTPServer) registerDomainRoutes() {
	bookmarkHTTP.RegisterRoutes(srv.gin, srv.bookmarkHandler, srv.middleware.RateLimit())
	srv.l.Infof(context.Background(), "Bookmark relay routes registered: GET /health, GET /recent, POST /intake")
}

// requestLogger logs one line per request.
func (srv HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		srv.l.Infof(c.Request.Context(), "[relay] %s %s %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}
