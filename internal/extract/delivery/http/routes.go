package http

import (
	"github.com/gin-gonic/gin"

	"mindlyst/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Extraction is open to anonymous sessions but rate limited per client IP
// since every request fans out to the inference provider.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware, requestsPerMin int) {
	rg.POST("/extract", mw.RateLimit(requestsPerMin), h.Extract)
}
