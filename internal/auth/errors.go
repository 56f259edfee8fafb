package auth

import "errors"

// Domain-specific errors for the auth package.
var (
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrInvalidState    = errors.New("oauth state mismatch")
	ErrExchangeFailed  = errors.New("failed to exchange authorization code")
	ErrUserinfoFailed  = errors.New("failed to fetch Google user info")
)
