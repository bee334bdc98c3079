package response

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Raw sends 200 with an already-encoded JSON document, untouched.
func Raw(c *gin.Context, body json.RawMessage) {
	c.Data(http.StatusOK, "application/json", body)
}

// Error sends {"error": msg} with the given status code.
func Error(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, ErrorResp{Error: err.Error()})
}

// BadRequest sends 400.
func BadRequest(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, err)
}

// BadGateway sends 502; used for any failure talking to the sandbox.
func BadGateway(c *gin.Context, err error) {
	Error(c, http.StatusBadGateway, err)
}

// NotFound sends 404 {"error": "not found"}.
func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, ErrorResp{Error: MessageNotFound})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResp{Error: MessageRateLimited})
}
