package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the caller's identity through use cases.
// SessionID is always present once the session middleware has run;
// the Google fields are empty until the user signs in.
type Scope struct {
	SessionID   string
	UserID      string
	Email       string
	Name        string
	AccessToken string // delegated Google credential scoped to the Tasks API
}

// Authenticated reports whether the scope carries a Google credential.
func (s Scope) Authenticated() bool {
	return s.AccessToken != ""
}
