package hfinference

import "errors"

// Kind classifies an extraction failure.
type Kind string

const (
	// KindServiceBusy means the remote model is loading or overloaded (HTTP 503).
	// Callers should suggest retrying after a delay.
	KindServiceBusy Kind = "service_busy"

	// KindUnsupportedModel means the configured model is not supported by the
	// caller's enabled providers or plan (HTTP 400 + model_not_supported).
	KindUnsupportedModel Kind = "unsupported_model"

	// KindNotFound means the model name is wrong, private, or unavailable (HTTP 404).
	KindNotFound Kind = "not_found"

	// KindMalformedResponse means the reply did not parse into the expected
	// shape, or its payload was not a valid task array.
	KindMalformedResponse Kind = "malformed_response"

	// KindUnknown wraps any other transport or remote failure.
	KindUnknown Kind = "unknown"
)

// Error is a classified extraction failure carrying the remote detail message.
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
