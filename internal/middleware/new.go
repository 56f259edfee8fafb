package middleware

import (
	"time"

	"mindlyst/internal/auth"
	pkgLog "mindlyst/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l            pkgLog.Logger
	sessions     *auth.Store
	cookieName   string
	cookieSecure bool
	sessionTTL   time.Duration
}

// New creates the middleware bundle.
func New(l pkgLog.Logger, sessions *auth.Store, cfg auth.Config) Middleware {
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = "mindlyst_session"
	}
	return Middleware{
		l:            l,
		sessions:     sessions,
		cookieName:   cookieName,
		cookieSecure: cfg.CookieSecure,
		sessionTTL:   cfg.SessionTTL,
	}
}
