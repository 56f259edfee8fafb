package http

import (
	"github.com/gin-gonic/gin"

	"mindlyst/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// State is readable by anonymous sessions; submissions require a Google
// credential.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	b := rg.Group("/batch")
	{
		b.GET("", h.State)
		b.POST("/submit-all", mw.Auth(), h.SubmitAll)
		b.POST("/tasks/:id/submit", mw.Auth(), h.SubmitOne)
	}
}
