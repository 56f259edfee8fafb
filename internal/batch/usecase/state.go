package usecase

import (
	"context"
	"fmt"

	"mindlyst/internal/batch"
	"mindlyst/internal/model"
)

// Aggregate outcome messages.
const (
	outcomeAllSucceeded = "Successfully added %d tasks to Google Tasks!"
	outcomePartial      = "Added %d tasks. %d tasks failed. Check individual task statuses."
	outcomeAllFailed    = "All tasks failed to add to Google Tasks. Check individual task statuses."
)

// State returns the current snapshot for the session. A session with no batch
// yet gets an empty snapshot, matching a freshly created empty collection.
func (uc *implUseCase) State(ctx context.Context, sc model.Scope) (batch.Snapshot, error) {
	b, ok := uc.batches.Get(sc.SessionID)
	if !ok {
		return batch.Snapshot{}, nil
	}
	return b.snapshot(), nil
}

// deriveOutcome computes the aggregate summary over attempted (non-idle)
// items. Only meaningful once the batch is no longer busy; recomputed on
// every observation instead of being maintained as a separate flag.
func deriveOutcome(snap batch.Snapshot) string {
	succeeded, failed := snap.Counts()
	switch {
	case succeeded > 0 && failed == 0:
		return fmt.Sprintf(outcomeAllSucceeded, succeeded)
	case succeeded > 0 && failed > 0:
		return fmt.Sprintf(outcomePartial, succeeded, failed)
	case succeeded == 0 && failed > 0:
		return outcomeAllFailed
	default:
		return ""
	}
}
