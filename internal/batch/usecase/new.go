package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"mindlyst/internal/batch"
	"mindlyst/internal/model"
	"mindlyst/pkg/gtasks"
	pkgLog "mindlyst/pkg/log"
)

const (
	defaultBatchTTL   = 24 * time.Hour
	defaultMaxBatches = 10000
)

// Config holds coordinator settings.
type Config struct {
	BatchTTL   time.Duration // idle batches age out after this
	MaxBatches int           // upper bound on concurrently tracked sessions
}

// implUseCase is the private implementation of batch.UseCase.
//
// Batches live in an expirable LRU keyed by session id; a batch is a
// transient per-session collection, not durable state. An in-flight completion
// holds a reference to the batch it was launched against; if the batch has
// been replaced or evicted since, the completion mutates an unreachable
// snapshot and the current collection stays untouched.
type implUseCase struct {
	l       pkgLog.Logger
	tasks   gtasks.ITasks
	batches *expirable.LRU[string, *batchState]

	// launch runs a completion flow asynchronously. Overridable in tests to
	// run submissions inline.
	launch func(fn func())
}

var _ batch.UseCase = (*implUseCase)(nil)

// New creates a new batch submission coordinator.
func New(l pkgLog.Logger, tasksClient gtasks.ITasks, cfg Config) *implUseCase {
	ttl := cfg.BatchTTL
	if ttl <= 0 {
		ttl = defaultBatchTTL
	}
	maxBatches := cfg.MaxBatches
	if maxBatches <= 0 {
		maxBatches = defaultMaxBatches
	}

	return &implUseCase{
		l:       l,
		tasks:   tasksClient,
		batches: expirable.NewLRU[string, *batchState](maxBatches, nil, ttl),
		launch:  func(fn func()) { go fn() },
	}
}

// batchState is one session's tracked-task collection. All reads and writes
// go through mu, so every mutation is a single atomic step from the point of
// view of other handlers.
type batchState struct {
	mu    sync.Mutex
	order []string
	items map[string]*model.TrackedTask
}

// snapshotLocked copies the current items in insertion order and derives the
// aggregate state. Caller must hold b.mu.
func (b *batchState) snapshotLocked() batch.Snapshot {
	snap := batch.Snapshot{Tasks: make([]model.TrackedTask, 0, len(b.order))}
	for _, id := range b.order {
		t := b.items[id]
		snap.Tasks = append(snap.Tasks, *t)
		if t.Status == model.StatusPending {
			snap.Busy = true
		}
	}
	if !snap.Busy {
		snap.Outcome = deriveOutcome(snap)
	}
	return snap
}

func (b *batchState) snapshot() batch.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}
