package model

import "time"

// CandidateTask is a task record produced by LLM extraction.
// Immutable once created; not yet submitted anywhere.
type CandidateTask struct {
	Title string
	Notes string
}

// SubmissionStatus is the lifecycle state of a tracked task.
//
// Allowed transitions:
//
//	idle → pending → {success, failed}
//	failed → pending (retry)
//
// success → pending and pending → pending are forbidden.
type SubmissionStatus string

const (
	StatusIdle    SubmissionStatus = "idle"
	StatusPending SubmissionStatus = "pending"
	StatusSuccess SubmissionStatus = "success"
	StatusFailed  SubmissionStatus = "failed"
)

// TrackedTask is a CandidateTask augmented with submission-lifecycle data.
// The ID is generated locally when the batch is loaded and never changes;
// completion handlers correlate results to items by this ID only.
type TrackedTask struct {
	ID      string
	Title   string
	Notes   string
	Status  SubmissionStatus
	Message string // result or failure detail, set only on success/failed
}

// LocalTask is a task row in the local date-scoped task list.
type LocalTask struct {
	ID        string
	UserID    string
	Title     string
	Notes     string
	DueDate   time.Time // date component only, the scoping key
	Done      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
