package middleware

import (
	"github.com/gin-gonic/gin"

	"mindlyst/internal/model"
)

const scopeContextKey = "mindlyst/scope"

// SetScope stores the caller scope on the gin context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeContextKey, sc)
}

// GetScope returns the caller scope set by the Session middleware.
// Zero scope when the middleware did not run.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeContextKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
