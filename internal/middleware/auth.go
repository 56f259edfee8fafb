package middleware

import (
	"github.com/gin-gonic/gin"

	"mindlyst/pkg/response"
)

// Auth requires a session with a delegated Google credential.
// Must run after Session(). Absence of the credential is terminal for the
// request; the client is expected to prompt re-authentication.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetScope(c).Authenticated() {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
