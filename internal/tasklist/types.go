package tasklist

import (
	"time"

	"mindlyst/internal/model"
)

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title   string
	Notes   string
	DueDate time.Time
}

type ListTasksInput struct {
	// Date scopes the list to a single due date. Zero value lists all dates.
	Date   time.Time
	Done   *bool
	Limit  int
	Offset int
}

type UpdateTaskInput struct {
	ID      string
	Title   string
	Notes   string
	DueDate *time.Time
	Done    *bool
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.LocalTask
}

type ListTasksOutput struct {
	Tasks  []model.LocalTask
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task model.LocalTask
}

type UpdateTaskOutput struct {
	Task model.LocalTask
}
