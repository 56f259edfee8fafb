package usecase

import (
	"context"

	"mindlyst/internal/batch"
	"mindlyst/internal/model"
	"mindlyst/pkg/gtasks"
)

// SubmitOne submits a single tracked task to Google Tasks.
// Pending and already-confirmed items are left untouched and no request is
// issued; while the batch is busy all submission actions are rejected.
func (uc *implUseCase) SubmitOne(ctx context.Context, sc model.Scope, taskID string) (batch.Snapshot, error) {
	if !sc.Authenticated() {
		return batch.Snapshot{}, batch.ErrNotAuthenticated
	}

	b, ok := uc.batches.Get(sc.SessionID)
	if !ok {
		return batch.Snapshot{}, batch.ErrBatchNotFound
	}

	b.mu.Lock()
	t, ok := b.items[taskID]
	if !ok {
		snap := b.snapshotLocked()
		b.mu.Unlock()
		return snap, batch.ErrTaskNotFound
	}

	switch t.Status {
	case model.StatusPending:
		snap := b.snapshotLocked()
		b.mu.Unlock()
		return snap, batch.ErrAlreadyInFlight
	case model.StatusSuccess:
		snap := b.snapshotLocked()
		b.mu.Unlock()
		return snap, batch.ErrAlreadyConfirmed
	}

	if busyLocked(b) {
		snap := b.snapshotLocked()
		b.mu.Unlock()
		return snap, batch.ErrBatchBusy
	}

	t.Status = model.StatusPending
	t.Message = ""
	item := *t
	snap := b.snapshotLocked()
	b.mu.Unlock()

	uc.launch(func() { uc.createAndSettle(sc, b, item) })

	return snap, nil
}

// SubmitAll submits every idle or failed item in the session's batch.
// The whole selection flips to pending in one locked step, then each item
// gets its own independent creation request; one item's failure never blocks
// or cancels the others.
func (uc *implUseCase) SubmitAll(ctx context.Context, sc model.Scope) (batch.Snapshot, error) {
	if !sc.Authenticated() {
		return batch.Snapshot{}, batch.ErrNotAuthenticated
	}

	b, ok := uc.batches.Get(sc.SessionID)
	if !ok {
		return batch.Snapshot{}, batch.ErrBatchNotFound
	}

	b.mu.Lock()
	if busyLocked(b) {
		snap := b.snapshotLocked()
		b.mu.Unlock()
		return snap, batch.ErrBatchBusy
	}

	var selection []model.TrackedTask
	for _, id := range b.order {
		t := b.items[id]
		if t.Status == model.StatusIdle || t.Status == model.StatusFailed {
			t.Status = model.StatusPending
			t.Message = ""
			selection = append(selection, *t)
		}
	}
	snap := b.snapshotLocked()
	b.mu.Unlock()

	if len(selection) == 0 {
		return snap, batch.ErrNothingToSubmit
	}

	uc.l.Infof(ctx, "batch: submitting %d tasks for session %s", len(selection), sc.SessionID)

	for _, item := range selection {
		item := item
		uc.launch(func() { uc.createAndSettle(sc, b, item) })
	}

	return snap, nil
}

// createAndSettle performs one creation call and records its result.
// It runs detached from the originating request context: once a request is
// sent it runs to completion and cannot be aborted by the user or by a
// subsequent LoadCandidates. Correlation is strictly by tracked-task id; a
// completion for an id not in the batch is dropped.
func (uc *implUseCase) createAndSettle(sc model.Scope, b *batchState, item model.TrackedTask) {
	ctx := context.Background()

	conf, err := uc.tasks.CreateTask(ctx, gtasks.CreateTaskRequest{
		AccessToken: sc.AccessToken,
		Title:       item.Title,
		Notes:       item.Notes,
		ClientID:    item.ID,
	})

	clientID := item.ID
	if conf != nil && conf.ClientID != "" {
		clientID = conf.ClientID
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.items[clientID]
	if !ok {
		uc.l.Debugf(ctx, "batch: dropping late completion for unknown task %s", clientID)
		return
	}
	if t.Status != model.StatusPending {
		return
	}

	if err != nil {
		t.Status = model.StatusFailed
		t.Message = err.Error()
		uc.l.Warnf(ctx, "batch: task %q failed: %v", item.Title, err)
		return
	}

	t.Status = model.StatusSuccess
	t.Message = conf.Message
	uc.l.Infof(ctx, "batch: task %q created as %s", conf.TaskTitle, conf.TaskID)
}

// busyLocked reports whether any item is pending. Caller must hold b.mu.
func busyLocked(b *batchState) bool {
	for _, t := range b.items {
		if t.Status == model.StatusPending {
			return true
		}
	}
	return false
}
