package http

import (
	"github.com/gin-gonic/gin"

	"mindlyst/internal/extract"
	pkgLog "mindlyst/pkg/log"
)

// Handler is the public interface for the extraction HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc extract.UseCase
}

// New creates a new HTTP handler for the extraction flow.
func New(l pkgLog.Logger, uc extract.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
