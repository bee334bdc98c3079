package http

import (
	"github.com/gin-gonic/gin"

	"nanoclaw-bridges/pkg/response"
)

// Health godoc
// @Summary     Extractor health
// @Description Proxies the bookmark extractor's /health endpoint inside the sandbox.
// @Tags        Bookmark
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Failure     502 {object} response.ErrorResp "Sandbox failure"
// @Router      /health [GET]
func (h *handler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Health(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Health: %v", err)
		h.mapError(c, err)
		return
	}

	response.Raw(c, out)
}

// Recent godoc
// @Summary     Recent extractions
// @Description Proxies the bookmark extractor's /recent endpoint inside the sandbox.
// @Tags        Bookmark
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Failure     502 {object} response.ErrorResp "Sandbox failure"
// @Router      /recent [GET]
func (h *handler) Recent(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Recent(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Recent: %v", err)
		h.mapError(c, err)
		return
	}

	response.Raw(c, out)
}

// Intake godoc
// @Summary     Submit a bookmark
// @Description Forwards the body verbatim to the extractor and pulls the created file into the intake directory.
// @Tags        Bookmark
// @Accept      json
// @Produce     json
// @Param       body body intakeReq true "Bookmark; any extra fields are forwarded"
// @Success     200 {object} map[string]interface{} "Extractor result with synced_to_jibrain / sync_error"
// @Failure     400 {object} response.ErrorResp "Invalid JSON or missing url"
// @Failure     429 {object} response.ErrorResp "Rate limit exceeded"
// @Failure     502 {object} response.ErrorResp "Sandbox failure"
// @Router      /intake [POST]
func (h *handler) Intake(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIntakeReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	output, err := h.uc.Intake(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Intake: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, output.Result)
}
