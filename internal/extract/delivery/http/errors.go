package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mindlyst/internal/extract"
	"mindlyst/pkg/hfinference"
	"mindlyst/pkg/response"
)

// mapError translates extraction failures into HTTP responses. The remote
// detail message is surfaced verbatim so the client can show it.
func (h *handler) mapError(c *gin.Context, err error) {
	if errors.Is(err, extract.ErrTextTooShort) {
		response.Error(c, err, nil)
		return
	}

	switch hfinference.KindOf(err) {
	case hfinference.KindServiceBusy:
		response.ErrorWithStatus(c, http.StatusServiceUnavailable, err)
	case hfinference.KindUnsupportedModel:
		response.Error(c, err, nil)
	case hfinference.KindNotFound:
		response.NotFound(c, err)
	case hfinference.KindMalformedResponse:
		response.ErrorWithStatus(c, http.StatusBadGateway, err)
	default:
		response.InternalError(c, err)
	}
}
