package usecase

import (
	"context"

	"github.com/google/uuid"

	"mindlyst/internal/batch"
	"mindlyst/internal/model"
)

// LoadCandidates replaces the session's tracked collection wholesale.
// Every item gets a freshly generated id and starts idle; any prior batch for
// the session is discarded, including items whose creation requests are still
// in flight (their completions will target ids that no longer exist and be
// dropped). This intentionally throws away results from the previous batch.
func (uc *implUseCase) LoadCandidates(ctx context.Context, sc model.Scope, candidates []model.CandidateTask) (batch.Snapshot, error) {
	b := &batchState{
		order: make([]string, 0, len(candidates)),
		items: make(map[string]*model.TrackedTask, len(candidates)),
	}

	for _, c := range candidates {
		t := &model.TrackedTask{
			ID:     uuid.NewString(),
			Title:  c.Title,
			Notes:  c.Notes,
			Status: model.StatusIdle,
		}
		b.order = append(b.order, t.ID)
		b.items[t.ID] = t
	}

	uc.batches.Add(sc.SessionID, b)
	uc.l.Infof(ctx, "batch: loaded %d candidates for session %s", len(candidates), sc.SessionID)

	return b.snapshot(), nil
}
