package http

import (
	"github.com/gin-gonic/gin"

	"mindlyst/internal/middleware"
	"mindlyst/pkg/response"
)

// Extract godoc
// @Summary     Extract tasks from free-form text
// @Description Runs LLM extraction over the pasted text and replaces the
// @Description session's batch with the resulting candidates, all idle.
// @Tags        Extract
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Text to analyze"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Text too short or model not supported"
// @Failure     404 {object} response.Resp "Model not found"
// @Failure     502 {object} response.Resp "Malformed model response"
// @Failure     503 {object} response.Resp "Model loading or overloaded"
// @Router      /api/v1/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extract(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "extract.http: Extract: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newExtractResp(output))
}
