package batch

import (
	"context"

	"mindlyst/internal/model"
)

// UseCase is the batch submission coordinator. It owns the tracked-task
// collection for each session, enforces at-most-one in-flight creation request
// per item, and derives the aggregate busy/outcome state.
type UseCase interface {
	// LoadCandidates replaces the session's entire tracked collection with
	// fresh idle items and clears any prior aggregate outcome.
	LoadCandidates(ctx context.Context, sc model.Scope, candidates []model.CandidateTask) (Snapshot, error)

	// SubmitOne submits a single item. Items that are pending or already
	// confirmed are left untouched and no request is issued.
	SubmitOne(ctx context.Context, sc model.Scope, taskID string) (Snapshot, error)

	// SubmitAll submits every idle or failed item concurrently. The whole
	// selection is marked pending in one step before any request is issued.
	SubmitAll(ctx context.Context, sc model.Scope) (Snapshot, error)

	// State returns the current snapshot of the session's batch.
	State(ctx context.Context, sc model.Scope) (Snapshot, error)
}
