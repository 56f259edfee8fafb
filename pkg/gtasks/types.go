package gtasks

import "time"

// CreateTaskRequest is the input for creating a Google Task.
// ClientID is an opaque correlation token supplied by the caller and echoed
// back in the Confirmation, so out-of-order completions can be matched to the
// originating item.
type CreateTaskRequest struct {
	AccessToken string // delegated OAuth2 credential scoped to the Tasks API
	Title       string
	Notes       string
	Due         time.Time // zero value means "end of current day UTC"
	ClientID    string
}

// Confirmation is the result of a successful task creation.
type Confirmation struct {
	TaskID    string
	TaskTitle string
	Message   string
	ClientID  string
}
