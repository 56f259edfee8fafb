package hfinference

import "context"

// IExtractor defines the interface for the task extraction client.
// Implementations are safe for concurrent use.
type IExtractor interface {
	// ExtractTasks extracts candidate tasks from free-form text.
	ExtractTasks(ctx context.Context, text string) ([]Task, error)

	// Model returns the model being used.
	Model() string
}

var _ IExtractor = (*Client)(nil)
