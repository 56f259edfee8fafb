package batch

import "errors"

// Domain-specific errors for the batch package.
var (
	ErrBatchNotFound    = errors.New("no batch loaded for this session")
	ErrTaskNotFound     = errors.New("task not found in current batch")
	ErrAlreadyInFlight  = errors.New("task submission already in flight")
	ErrAlreadyConfirmed = errors.New("task already added to Google Tasks")
	ErrNothingToSubmit  = errors.New("no tasks available to add or all have been processed")
	ErrNotAuthenticated = errors.New("sign in with Google to add tasks")
	ErrBatchBusy        = errors.New("batch submission in progress")
)
