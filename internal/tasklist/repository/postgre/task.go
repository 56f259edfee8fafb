package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"mindlyst/internal/model"
	repo "mindlyst/internal/tasklist/repository"
)

const taskColumns = `id, user_id, title, notes, due_date, done, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (model.LocalTask, error) {
	var t model.LocalTask
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Notes, &t.DueDate, &t.Done, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.LocalTask, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (user_id, title, notes, due_date, done, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW(), NOW())
		RETURNING %s`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, opt.UserID, opt.Title, opt.Notes, opt.DueDate))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.LocalTask{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// GetOneTask retrieves a single task by the provided filters (AND condition).
// Returns zero-value task (ID == "") when not found — no error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.LocalTask, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.LocalTask{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.LocalTask{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns a paginated list of tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.LocalTask, int, error) {
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.LocalTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	return tasks, total, nil
}

// UpdateTask updates a task owned by the given user and returns the updated
// entity. Zero-value result when the row does not exist or belongs to someone
// else.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.LocalTask, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET title = $1, notes = $2, due_date = $3, done = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
		RETURNING %s`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Notes, opt.DueDate, opt.Done, time.Now(), opt.ID, opt.UserID,
	))
	if err == sql.ErrNoRows {
		return model.LocalTask{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.LocalTask{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTask removes a task owned by the given user.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
