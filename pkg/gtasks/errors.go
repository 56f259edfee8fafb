package gtasks

import "errors"

// Kind classifies a task-creation failure.
type Kind string

const (
	// KindNotAuthenticated means the credential is missing, expired, or
	// rejected (HTTP 401/403). The user must sign in again; the call is not
	// retried automatically.
	KindNotAuthenticated Kind = "not_authenticated"

	// KindUnknown wraps any other transport or remote failure.
	KindUnknown Kind = "unknown"
)

// Error is a classified task-creation failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf extracts the failure Kind from err, or KindUnknown for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
