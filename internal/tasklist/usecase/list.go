package usecase

import (
	"context"

	"mindlyst/internal/model"
	"mindlyst/internal/tasklist"
	repo "mindlyst/internal/tasklist/repository"
)

// List returns the user's tasks, optionally scoped to a single due date.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input tasklist.ListTasksInput) (tasklist.ListTasksOutput, error) {
	if sc.UserID == "" {
		return tasklist.ListTasksOutput{}, tasklist.ErrNoUser
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:  sc.UserID,
		DueDate: dateOnly(input.Date),
		Done:    input.Done,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return tasklist.ListTasksOutput{}, err
	}

	return tasklist.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
