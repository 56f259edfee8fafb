package http

import (
	"github.com/gin-gonic/gin"

	"mindlyst/internal/middleware"
	"mindlyst/pkg/response"
)

// SubmitOne godoc
// @Summary     Submit a single task to Google Tasks
// @Description Starts an asynchronous creation request for one tracked task.
// @Description Tasks that are already in flight or confirmed are left untouched.
// @Tags        Batch
// @Produce     json
// @Param       id path string true "Tracked task ID"
// @Success     200 {object} batchResp
// @Failure     401 {object} response.Resp "Not signed in"
// @Failure     404 {object} response.Resp "Unknown batch or task"
// @Failure     409 {object} response.Resp "Task in flight or already confirmed"
// @Router      /api/v1/batch/tasks/{id}/submit [POST]
func (h *handler) SubmitOne(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	snap, err := h.uc.SubmitOne(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "batch.http: SubmitOne: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newBatchResp(snap))
}

// SubmitAll godoc
// @Summary     Submit all remaining tasks to Google Tasks
// @Description Marks every idle or previously failed task pending in one step,
// @Description then issues their creation requests concurrently.
// @Tags        Batch
// @Produce     json
// @Success     200 {object} batchResp
// @Failure     401 {object} response.Resp "Not signed in"
// @Failure     409 {object} response.Resp "Submission already in progress"
// @Router      /api/v1/batch/submit-all [POST]
func (h *handler) SubmitAll(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	snap, err := h.uc.SubmitAll(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "batch.http: SubmitAll: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newBatchResp(snap))
}

// State godoc
// @Summary     Current batch state
// @Description Returns the tracked tasks with their per-item statuses and the
// @Description derived busy flag and aggregate outcome.
// @Tags        Batch
// @Produce     json
// @Success     200 {object} batchResp
// @Router      /api/v1/batch [GET]
func (h *handler) State(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	snap, err := h.uc.State(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "batch.http: State: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newBatchResp(snap))
}
