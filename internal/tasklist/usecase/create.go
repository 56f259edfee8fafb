package usecase

import (
	"context"
	"strings"

	"mindlyst/internal/model"
	"mindlyst/internal/tasklist"
	repo "mindlyst/internal/tasklist/repository"
)

// Create inserts a new task for the signed-in user.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input tasklist.CreateTaskInput) (tasklist.CreateTaskOutput, error) {
	if sc.UserID == "" {
		return tasklist.CreateTaskOutput{}, tasklist.ErrNoUser
	}
	if strings.TrimSpace(input.Title) == "" {
		return tasklist.CreateTaskOutput{}, tasklist.ErrTitleRequired
	}

	task, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:  sc.UserID,
		Title:   strings.TrimSpace(input.Title),
		Notes:   input.Notes,
		DueDate: dateOnly(input.DueDate),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return tasklist.CreateTaskOutput{}, err
	}

	return tasklist.CreateTaskOutput{Task: task}, nil
}
