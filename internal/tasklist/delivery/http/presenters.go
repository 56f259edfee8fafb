package http

import (
	"time"

	"mindlyst/internal/model"
	"mindlyst/internal/tasklist"
	"mindlyst/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title   string `json:"title"    binding:"required,min=1,max=255"`
	Notes   string `json:"notes"    binding:"max=2000"`
	DueDate string `json:"due_date" binding:"required"`
}

func (r createReq) toInput() tasklist.CreateTaskInput {
	due, _ := time.Parse(response.DateFormat, r.DueDate)
	return tasklist.CreateTaskInput{
		Title:   r.Title,
		Notes:   r.Notes,
		DueDate: due,
	}
}

type listReq struct {
	Date   string `form:"date"`
	Done   *bool  `form:"done"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() tasklist.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	var date time.Time
	if r.Date != "" {
		date, _ = time.Parse(response.DateFormat, r.Date)
	}
	return tasklist.ListTasksInput{
		Date:   date,
		Done:   r.Done,
		Limit:  limit,
		Offset: offset,
	}
}

type updateReq struct {
	ID      string  `json:"-"` // populated from URI param
	Title   string  `json:"title"    binding:"omitempty,min=1,max=255"`
	Notes   string  `json:"notes"    binding:"omitempty,max=2000"`
	DueDate *string `json:"due_date"`
	Done    *bool   `json:"done"`
}

func (r updateReq) toInput() tasklist.UpdateTaskInput {
	input := tasklist.UpdateTaskInput{
		ID:    r.ID,
		Title: r.Title,
		Notes: r.Notes,
		Done:  r.Done,
	}
	if r.DueDate != nil {
		if due, err := time.Parse(response.DateFormat, *r.DueDate); err == nil {
			input.DueDate = &due
		}
	}
	return input
}

// --- Response DTOs ---

type taskResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes,omitempty"`
	DueDate   string    `json:"due_date"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTaskResp(t model.LocalTask) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Notes:     t.Notes,
		DueDate:   t.DueDate.Format(response.DateFormat),
		Done:      t.Done,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out tasklist.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out tasklist.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out tasklist.DetailTaskOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out tasklist.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
