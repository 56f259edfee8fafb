package repository

import (
	"context"

	"mindlyst/internal/model"
)

// Repository is the composed interface for the task-list data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for local tasks.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.LocalTask, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.LocalTask, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.LocalTask, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.LocalTask, error)
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) error
}
