package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mindlyst/internal/tasklist"
	"mindlyst/pkg/response"
)

// mapError translates task-list domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tasklist.ErrNoUser):
		response.Unauthorized(c)
	case errors.Is(err, tasklist.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, tasklist.ErrTitleRequired):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
