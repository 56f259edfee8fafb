package auth

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"mindlyst/pkg/response"
)

// Login godoc
// @Summary     Start Google sign-in
// @Description Redirects the browser to the Google OAuth consent screen.
// @Tags        Auth
// @Success     302
// @Router      /api/v1/auth/google/login [GET]
func (h *handler) Login(c *gin.Context) {
	state := uuid.NewString()
	c.SetCookie(stateCookieName, state, 600, "/", "", h.cfg.CookieSecure, true)
	c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline))
}

// Callback godoc
// @Summary     Google sign-in callback
// @Description Exchanges the authorization code, fetches the user profile,
// @Description and binds the Google credential to the caller's session.
// @Tags        Auth
// @Success     302
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/google/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	wantState, err := c.Cookie(stateCookieName)
	if err != nil || wantState == "" || c.Query("state") != wantState {
		response.Error(c, ErrInvalidState, nil)
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", h.cfg.CookieSecure, true)

	token, err := h.oauth.Exchange(ctx, c.Query("code"))
	if err != nil {
		h.l.Errorf(ctx, "auth: code exchange failed: %v", err)
		response.Error(c, ErrExchangeFailed, nil)
		return
	}

	user, err := h.fetchUserinfo(c, token)
	if err != nil {
		h.l.Errorf(ctx, "auth: userinfo fetch failed: %v", err)
		response.Error(c, ErrUserinfoFailed, nil)
		return
	}

	sess := h.currentSession(c)
	sess.User = user
	sess.Token = token
	h.store.Save(sess)
	h.setSessionCookie(c, sess.ID)

	h.l.Infof(ctx, "auth: session %s signed in as %s", sess.ID, user.Email)
	c.Redirect(http.StatusFound, "/")
}

// Me godoc
// @Summary     Current session info
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	sess := h.currentSession(c)
	if !sess.Authenticated() {
		response.OK(c, gin.H{"authenticated": false})
		return
	}
	response.OK(c, gin.H{
		"authenticated": true,
		"user": gin.H{
			"email":   sess.User.Email,
			"name":    sess.User.Name,
			"picture": sess.User.Picture,
		},
	})
}

// Logout godoc
// @Summary     Sign out
// @Description Drops the session and its delegated credential.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	if id, err := c.Cookie(h.cfg.CookieName); err == nil && id != "" {
		h.store.Delete(id)
	}
	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", h.cfg.CookieSecure, true)
	response.OK(c, gin.H{"status": "signed out"})
}

// fetchUserinfo loads the Google profile with the freshly exchanged token.
func (h *handler) fetchUserinfo(c *gin.Context, token *oauth2.Token) (*GoogleUser, error) {
	client := h.oauth.Client(c.Request.Context(), token)
	resp, err := client.Get(h.userinfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrUserinfoFailed
	}

	var user GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// currentSession returns the caller's session, creating an anonymous one
// (with cookie) when none exists.
func (h *handler) currentSession(c *gin.Context) *Session {
	if id, err := c.Cookie(h.cfg.CookieName); err == nil && id != "" {
		if sess, err := h.store.Get(id); err == nil {
			return sess
		}
	}
	sess := h.store.Create()
	h.setSessionCookie(c, sess.ID)
	return sess
}

func (h *handler) setSessionCookie(c *gin.Context, id string) {
	maxAge := int(h.cfg.SessionTTL.Seconds())
	if maxAge <= 0 {
		maxAge = int(defaultSessionTTL.Seconds())
	}
	c.SetCookie(h.cfg.CookieName, id, maxAge, "/", "", h.cfg.CookieSecure, true)
}
