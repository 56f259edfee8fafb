package http

import (
	"mindlyst/internal/extract"
	"mindlyst/internal/model"
)

// --- Request DTOs ---

type extractReq struct {
	Text string `json:"text" binding:"required"`
}

func (r extractReq) toInput() extract.ExtractInput {
	return extract.ExtractInput{Text: r.Text}
}

// --- Response DTOs ---

type candidateResp struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Notes  string `json:"notes,omitempty"`
	Status string `json:"status"`
}

type extractResp struct {
	Model string          `json:"model"`
	Tasks []candidateResp `json:"tasks"`
}

func (h *handler) newExtractResp(out extract.ExtractOutput) extractResp {
	tasks := make([]candidateResp, len(out.Snapshot.Tasks))
	for i, t := range out.Snapshot.Tasks {
		tasks[i] = newCandidateResp(t)
	}
	return extractResp{
		Model: out.Model,
		Tasks: tasks,
	}
}

func newCandidateResp(t model.TrackedTask) candidateResp {
	return candidateResp{
		ID:     t.ID,
		Title:  t.Title,
		Notes:  t.Notes,
		Status: string(t.Status),
	}
}
