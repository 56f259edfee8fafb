package usecase

import (
	"context"

	"mindlyst/internal/model"
	"mindlyst/internal/tasklist"
	repo "mindlyst/internal/tasklist/repository"
)

// Detail retrieves a single task owned by the user.
// Returns ErrTaskNotFound when absent or owned by someone else.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (tasklist.DetailTaskOutput, error) {
	if sc.UserID == "" {
		return tasklist.DetailTaskOutput{}, tasklist.ErrNoUser
	}

	task, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return tasklist.DetailTaskOutput{}, err
	}
	if task.ID == "" {
		return tasklist.DetailTaskOutput{}, tasklist.ErrTaskNotFound
	}
	return tasklist.DetailTaskOutput{Task: task}, nil
}

// Update modifies an existing task (partial update).
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input tasklist.UpdateTaskInput) (tasklist.UpdateTaskOutput, error) {
	if sc.UserID == "" {
		return tasklist.UpdateTaskOutput{}, tasklist.ErrNoUser
	}

	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return tasklist.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return tasklist.UpdateTaskOutput{}, tasklist.ErrTaskNotFound
	}

	opt := repo.UpdateTaskOptions{
		ID:      input.ID,
		UserID:  sc.UserID,
		Title:   uc.coalesce(input.Title, existing.Title),
		Notes:   uc.coalesce(input.Notes, existing.Notes),
		DueDate: existing.DueDate,
		Done:    existing.Done,
	}
	if input.DueDate != nil {
		opt.DueDate = dateOnly(*input.DueDate)
	}
	if input.Done != nil {
		opt.Done = *input.Done
	}

	task, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return tasklist.UpdateTaskOutput{}, err
	}
	return tasklist.UpdateTaskOutput{Task: task}, nil
}

// Delete removes a task owned by the user.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if sc.UserID == "" {
		return tasklist.ErrNoUser
	}

	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return tasklist.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
