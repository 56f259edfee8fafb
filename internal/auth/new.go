package auth

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	pkgLog "mindlyst/pkg/log"
)

const (
	// TasksScope is the delegated scope required to create Google Tasks.
	TasksScope = "https://www.googleapis.com/auth/tasks"

	defaultUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	stateCookieName = "oauth_state"
)

// Handler is the interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Callback(c *gin.Context)
	Me(c *gin.Context)
	Logout(c *gin.Context)
}

type handler struct {
	l           pkgLog.Logger
	store       *Store
	oauth       *oauth2.Config
	cfg         Config
	userinfoURL string
}

// NewHandler creates the auth handler with the Google OAuth code-flow config.
func NewHandler(l pkgLog.Logger, store *Store, cfg Config) *handler {
	if cfg.CookieName == "" {
		cfg.CookieName = "mindlyst_session"
	}
	return &handler{
		l:     l,
		store: store,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile", TasksScope},
			Endpoint:     google.Endpoint,
		},
		cfg:         cfg,
		userinfoURL: defaultUserinfoURL,
	}
}

// SetUserinfoURL overrides the userinfo endpoint. Intended for tests.
func (h *handler) SetUserinfoURL(u string) {
	h.userinfoURL = u
}

// SetOAuthEndpoint overrides the OAuth endpoint. Intended for tests.
func (h *handler) SetOAuthEndpoint(ep oauth2.Endpoint) {
	h.oauth.Endpoint = ep
}
