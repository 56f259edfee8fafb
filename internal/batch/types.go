package batch

import "mindlyst/internal/model"

// Snapshot is a point-in-time view of a session's batch.
// Busy and Outcome are derived from item statuses on every observation,
// never stored as separate authoritative flags.
type Snapshot struct {
	Tasks   []model.TrackedTask
	Busy    bool   // true iff at least one item is pending
	Outcome string // aggregate summary, empty while busy or before any attempt
}

// Counts returns the number of items per terminal status among attempted items.
func (s Snapshot) Counts() (succeeded, failed int) {
	for _, t := range s.Tasks {
		switch t.Status {
		case model.StatusSuccess:
			succeeded++
		case model.StatusFailed:
			failed++
		}
	}
	return succeeded, failed
}
