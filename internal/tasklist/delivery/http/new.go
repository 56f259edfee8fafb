package http

import (
	"github.com/gin-gonic/gin"

	"mindlyst/internal/tasklist"
	pkgLog "mindlyst/pkg/log"
)

// Handler is the public interface for the task-list HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc tasklist.UseCase
}

// New creates a new HTTP handler for the task-list domain.
func New(l pkgLog.Logger, uc tasklist.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
