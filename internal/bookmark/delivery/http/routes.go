package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the relay routes. extra is applied to POST /intake only
// (rate limiting).
func RegisterRoutes(r gin.IRoutes, h Handler, extra ...gin.HandlerFunc) {
	r.GET("/health", h.Health)
	r.GET("/recent", h.Recent)
	r.POST("/intake", append(extra, h.Intake)...)
}
