package http

import (
	"mindlyst/internal/batch"
	"mindlyst/internal/model"
)

// --- Response DTOs ---

type trackedTaskResp struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Notes   string `json:"notes,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func newTrackedTaskResp(t model.TrackedTask) trackedTaskResp {
	return trackedTaskResp{
		ID:      t.ID,
		Title:   t.Title,
		Notes:   t.Notes,
		Status:  string(t.Status),
		Message: t.Message,
	}
}

type batchResp struct {
	Tasks   []trackedTaskResp `json:"tasks"`
	Busy    bool              `json:"busy"`
	Outcome string            `json:"outcome,omitempty"`
}

func (h *handler) newBatchResp(snap batch.Snapshot) batchResp {
	tasks := make([]trackedTaskResp, len(snap.Tasks))
	for i, t := range snap.Tasks {
		tasks[i] = newTrackedTaskResp(t)
	}
	return batchResp{
		Tasks:   tasks,
		Busy:    snap.Busy,
		Outcome: snap.Outcome,
	}
}
