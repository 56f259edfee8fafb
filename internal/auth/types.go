package auth

import (
	"time"

	"golang.org/x/oauth2"
)

// GoogleUser is the subset of the Google userinfo payload we keep.
type GoogleUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Session is one browser session. Anonymous until SignIn fills the Google
// fields; the token carries the delegated credential for the Tasks API.
type Session struct {
	ID        string
	User      *GoogleUser
	Token     *oauth2.Token
	CreatedAt time.Time
}

// Authenticated reports whether the session carries a usable credential.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != nil && s.Token.AccessToken != ""
}

// Config holds the Google OAuth settings.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	SessionTTL   time.Duration
	MaxSessions  int
	CookieName   string
	CookieSecure bool
}
