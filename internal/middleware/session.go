package middleware

import (
	"github.com/gin-gonic/gin"

	"mindlyst/internal/auth"
	"mindlyst/internal/model"
)

// Session loads the caller's session from the cookie, creating an anonymous
// one when missing, and injects the derived scope into the request context.
// Every API route runs behind this so the batch coordinator always has a
// stable session id to key its collections by.
func (mw Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := mw.ensureSession(c)
		SetScope(c, scopeFromSession(sess))
		c.Next()
	}
}

func (mw Middleware) ensureSession(c *gin.Context) *auth.Session {
	if id, err := c.Cookie(mw.cookieName); err == nil && id != "" {
		if sess, err := mw.sessions.Get(id); err == nil {
			return sess
		}
	}

	sess := mw.sessions.Create()
	maxAge := int(mw.sessionTTL.Seconds())
	if maxAge <= 0 {
		maxAge = 86400
	}
	c.SetCookie(mw.cookieName, sess.ID, maxAge, "/", "", mw.cookieSecure, true)
	return sess
}

func scopeFromSession(sess *auth.Session) model.Scope {
	sc := model.Scope{SessionID: sess.ID}
	if sess.User != nil {
		sc.UserID = sess.User.ID
		sc.Email = sess.User.Email
		sc.Name = sess.User.Name
	}
	if sess.Token != nil {
		sc.AccessToken = sess.Token.AccessToken
	}
	return sc
}
