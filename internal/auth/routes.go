package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the auth endpoints. All run behind the Session
// middleware so Callback can bind the credential to an existing session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	a := rg.Group("/auth")
	{
		a.GET("/google/login", h.Login)
		a.GET("/google/callback", h.Callback)
		a.GET("/me", h.Me)
		a.POST("/logout", h.Logout)
	}
}
