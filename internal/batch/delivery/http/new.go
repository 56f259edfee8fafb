package http

import (
	"github.com/gin-gonic/gin"

	"mindlyst/internal/batch"
	pkgLog "mindlyst/pkg/log"
)

// Handler is the public interface for the batch HTTP delivery layer.
type Handler interface {
	SubmitOne(c *gin.Context)
	SubmitAll(c *gin.Context)
	State(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc batch.UseCase
}

// New creates a new HTTP handler for the batch domain.
func New(l pkgLog.Logger, uc batch.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
