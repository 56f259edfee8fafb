package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mindlyst/internal/batch"
	"mindlyst/pkg/response"
)

// mapError translates batch domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, batch.ErrNotAuthenticated):
		response.Unauthorized(c)
	case errors.Is(err, batch.ErrBatchNotFound), errors.Is(err, batch.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, batch.ErrAlreadyInFlight),
		errors.Is(err, batch.ErrAlreadyConfirmed),
		errors.Is(err, batch.ErrBatchBusy):
		response.Conflict(c, err)
	case errors.Is(err, batch.ErrNothingToSubmit):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
