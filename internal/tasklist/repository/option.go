package repository

import "time"

// CreateTaskOptions holds parameters for inserting a new task row.
type CreateTaskOptions struct {
	UserID  string
	Title   string
	Notes   string
	DueDate time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing tasks.
type ListTasksOptions struct {
	UserID  string
	DueDate time.Time // zero value means no date filter
	Done    *bool
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateTaskOptions holds parameters for updating an existing task.
type UpdateTaskOptions struct {
	ID      string
	UserID  string
	Title   string
	Notes   string
	DueDate time.Time
	Done    bool
}

// DeleteTaskOptions identifies the row to remove, owner included.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}
