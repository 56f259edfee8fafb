package usecase

import (
	"context"
	"testing"
	"time"

	"mindlyst/internal/model"
	"mindlyst/internal/tasklist"
	repo "mindlyst/internal/tasklist/repository"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo is an in-memory Repository.
type mockRepo struct {
	tasks  map[string]model.LocalTask
	nextID int
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: make(map[string]model.LocalTask)}
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.LocalTask, error) {
	m.nextID++
	now := time.Now()
	t := model.LocalTask{
		ID:        string(rune('a' + m.nextID - 1)),
		UserID:    opt.UserID,
		Title:     opt.Title,
		Notes:     opt.Notes,
		DueDate:   opt.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.LocalTask, error) {
	t, ok := m.tasks[opt.ID]
	if !ok || (opt.UserID != "" && t.UserID != opt.UserID) {
		return model.LocalTask{}, nil
	}
	return t, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.LocalTask, int, error) {
	var out []model.LocalTask
	for _, t := range m.tasks {
		if opt.UserID != "" && t.UserID != opt.UserID {
			continue
		}
		if !opt.DueDate.IsZero() && !t.DueDate.Equal(opt.DueDate) {
			continue
		}
		if opt.Done != nil && t.Done != *opt.Done {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.LocalTask, error) {
	t, ok := m.tasks[opt.ID]
	if !ok || t.UserID != opt.UserID {
		return model.LocalTask{}, nil
	}
	t.Title = opt.Title
	t.Notes = opt.Notes
	t.DueDate = opt.DueDate
	t.Done = opt.Done
	t.UpdatedAt = time.Now()
	m.tasks[opt.ID] = t
	return t, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	t, ok := m.tasks[opt.ID]
	if ok && t.UserID == opt.UserID {
		delete(m.tasks, opt.ID)
	}
	return nil
}

func TestTaskListUseCase(t *testing.T) {
	ctx := context.Background()
	owner := model.Scope{SessionID: "s1", UserID: "user-1", AccessToken: "tok"}
	other := model.Scope{SessionID: "s2", UserID: "user-2", AccessToken: "tok"}
	anon := model.Scope{SessionID: "s3"}
	due := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

	t.Run("Create Truncates Due Date", func(t *testing.T) {
		uc := New(newMockRepo(), noopLogger{})

		out, err := uc.Create(ctx, owner, tasklist.CreateTaskInput{Title: "  Buy milk  ", DueDate: due})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Title != "Buy milk" {
			t.Errorf("expected trimmed title, got %q", out.Task.Title)
		}
		want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		if !out.Task.DueDate.Equal(want) {
			t.Errorf("expected due date %v, got %v", want, out.Task.DueDate)
		}
	})

	t.Run("Create Requires Title", func(t *testing.T) {
		uc := New(newMockRepo(), noopLogger{})
		if _, err := uc.Create(ctx, owner, tasklist.CreateTaskInput{Title: "   "}); err != tasklist.ErrTitleRequired {
			t.Errorf("expected ErrTitleRequired, got %v", err)
		}
	})

	t.Run("Anonymous User Rejected", func(t *testing.T) {
		uc := New(newMockRepo(), noopLogger{})
		if _, err := uc.Create(ctx, anon, tasklist.CreateTaskInput{Title: "x"}); err != tasklist.ErrNoUser {
			t.Errorf("expected ErrNoUser, got %v", err)
		}
		if _, err := uc.List(ctx, anon, tasklist.ListTasksInput{}); err != tasklist.ErrNoUser {
			t.Errorf("expected ErrNoUser, got %v", err)
		}
	})

	t.Run("List Scoped To Date And Owner", func(t *testing.T) {
		mr := newMockRepo()
		uc := New(mr, noopLogger{})

		if _, err := uc.Create(ctx, owner, tasklist.CreateTaskInput{Title: "today", DueDate: due}); err != nil {
			t.Fatal(err)
		}
		if _, err := uc.Create(ctx, owner, tasklist.CreateTaskInput{Title: "tomorrow", DueDate: due.AddDate(0, 0, 1)}); err != nil {
			t.Fatal(err)
		}
		if _, err := uc.Create(ctx, other, tasklist.CreateTaskInput{Title: "not mine", DueDate: due}); err != nil {
			t.Fatal(err)
		}

		out, err := uc.List(ctx, owner, tasklist.ListTasksInput{Date: due})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 1 || out.Tasks[0].Title != "today" {
			t.Errorf("expected only today's own task, got %+v", out.Tasks)
		}
	})

	t.Run("Update Partial And Cross User", func(t *testing.T) {
		mr := newMockRepo()
		uc := New(mr, noopLogger{})

		created, err := uc.Create(ctx, owner, tasklist.CreateTaskInput{Title: "draft", Notes: "n", DueDate: due})
		if err != nil {
			t.Fatal(err)
		}

		done := true
		out, err := uc.Update(ctx, owner, tasklist.UpdateTaskInput{ID: created.Task.ID, Done: &done})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Task.Done || out.Task.Title != "draft" || out.Task.Notes != "n" {
			t.Errorf("partial update broke fields: %+v", out.Task)
		}

		if _, err := uc.Update(ctx, other, tasklist.UpdateTaskInput{ID: created.Task.ID, Title: "stolen"}); err != tasklist.ErrTaskNotFound {
			t.Errorf("expected ErrTaskNotFound for other user, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		mr := newMockRepo()
		uc := New(mr, noopLogger{})

		created, err := uc.Create(ctx, owner, tasklist.CreateTaskInput{Title: "gone", DueDate: due})
		if err != nil {
			t.Fatal(err)
		}
		if err := uc.Delete(ctx, owner, created.Task.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.Delete(ctx, owner, created.Task.ID); err != tasklist.ErrTaskNotFound {
			t.Errorf("expected ErrTaskNotFound on second delete, got %v", err)
		}
	})
}
