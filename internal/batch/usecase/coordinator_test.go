package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"mindlyst/internal/batch"
	"mindlyst/internal/model"
	"mindlyst/pkg/gtasks"
)

func testScope() model.Scope {
	return model.Scope{SessionID: "sess-1", UserID: "u1", AccessToken: "token"}
}

func candidates(titles ...string) []model.CandidateTask {
	out := make([]model.CandidateTask, 0, len(titles))
	for _, t := range titles {
		out = append(out, model.CandidateTask{Title: t})
	}
	return out
}

// newInlineUC returns a coordinator whose submissions run synchronously in
// the calling goroutine, so settlement is deterministic.
func newInlineUC(client *mockTasksClient) *implUseCase {
	uc := New(&mockLogger{}, client, Config{})
	uc.launch = func(fn func()) { fn() }
	return uc
}

func TestLoadCandidates(t *testing.T) {
	ctx := context.Background()
	sc := testScope()
	uc := newInlineUC(&mockTasksClient{})

	snap, err := uc.LoadCandidates(ctx, sc, candidates("a", "b", "c"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Tasks) != 3 {
		t.Fatalf("expected 3 tracked tasks, got %d", len(snap.Tasks))
	}

	seen := map[string]bool{}
	for _, task := range snap.Tasks {
		if task.Status != model.StatusIdle {
			t.Errorf("expected idle status, got %s", task.Status)
		}
		if task.ID == "" || seen[task.ID] {
			t.Errorf("expected unique non-empty id, got %q", task.ID)
		}
		seen[task.ID] = true
	}
	if snap.Busy || snap.Outcome != "" {
		t.Errorf("fresh batch must not be busy or carry an outcome: %+v", snap)
	}

	// Reload fully replaces the collection, ids included.
	snap2, err := uc.LoadCandidates(ctx, sc, candidates("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap2.Tasks) != 1 {
		t.Fatalf("expected 1 tracked task after reload, got %d", len(snap2.Tasks))
	}
	if seen[snap2.Tasks[0].ID] {
		t.Errorf("reload must not reuse ids")
	}
}

func TestSubmitOne(t *testing.T) {
	ctx := context.Background()
	sc := testScope()

	t.Run("Success", func(t *testing.T) {
		client := &mockTasksClient{}
		uc := newInlineUC(client)
		snap, _ := uc.LoadCandidates(ctx, sc, candidates("Buy milk"))

		_, err := uc.SubmitOne(ctx, sc, snap.Tasks[0].ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, _ := uc.State(ctx, sc)
		if got.Tasks[0].Status != model.StatusSuccess {
			t.Errorf("expected success, got %s", got.Tasks[0].Status)
		}
		if !strings.Contains(got.Tasks[0].Message, "created successfully") {
			t.Errorf("expected confirmation message, got %q", got.Tasks[0].Message)
		}
		if client.callCount() != 1 {
			t.Errorf("expected exactly 1 creation call, got %d", client.callCount())
		}
	})

	t.Run("Pending Is NoOp", func(t *testing.T) {
		client := &mockTasksClient{}
		uc := New(&mockLogger{}, client, Config{})
		uc.launch = func(fn func()) {} // never settles: item stays pending
		snap, _ := uc.LoadCandidates(ctx, sc, candidates("Buy milk"))

		if _, err := uc.SubmitOne(ctx, sc, snap.Tasks[0].ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.SubmitOne(ctx, sc, snap.Tasks[0].ID)
		if err != batch.ErrAlreadyInFlight {
			t.Fatalf("expected ErrAlreadyInFlight, got %v", err)
		}

		got, _ := uc.State(ctx, sc)
		if got.Tasks[0].Status != model.StatusPending {
			t.Errorf("state changed by no-op submit: %s", got.Tasks[0].Status)
		}
	})

	t.Run("Confirmed Is NoOp", func(t *testing.T) {
		client := &mockTasksClient{}
		uc := newInlineUC(client)
		snap, _ := uc.LoadCandidates(ctx, sc, candidates("Buy milk"))

		if _, err := uc.SubmitOne(ctx, sc, snap.Tasks[0].ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.SubmitOne(ctx, sc, snap.Tasks[0].ID)
		if err != batch.ErrAlreadyConfirmed {
			t.Fatalf("expected ErrAlreadyConfirmed, got %v", err)
		}
		if client.callCount() != 1 {
			t.Errorf("no-op must not issue a request, got %d calls", client.callCount())
		}
	})

	t.Run("Failed Then Retry", func(t *testing.T) {
		client := &mockTasksClient{failTitles: map[string]error{
			"Buy milk": &gtasks.Error{Kind: gtasks.KindUnknown, Message: "backend error"},
		}}
		uc := newInlineUC(client)
		snap, _ := uc.LoadCandidates(ctx, sc, candidates("Buy milk"))

		uc.SubmitOne(ctx, sc, snap.Tasks[0].ID)
		got, _ := uc.State(ctx, sc)
		if got.Tasks[0].Status != model.StatusFailed {
			t.Fatalf("expected failed, got %s", got.Tasks[0].Status)
		}
		if got.Tasks[0].Message != "backend error" {
			t.Errorf("expected failure detail, got %q", got.Tasks[0].Message)
		}

		// Retry is an explicit user action; failed → pending is allowed.
		client.mu.Lock()
		delete(client.failTitles, "Buy milk")
		client.mu.Unlock()

		if _, err := uc.SubmitOne(ctx, sc, snap.Tasks[0].ID); err != nil {
			t.Fatalf("retry rejected: %v", err)
		}
		got, _ = uc.State(ctx, sc)
		if got.Tasks[0].Status != model.StatusSuccess {
			t.Errorf("expected success after retry, got %s", got.Tasks[0].Status)
		}
	})

	t.Run("Unknown ID", func(t *testing.T) {
		uc := newInlineUC(&mockTasksClient{})
		uc.LoadCandidates(ctx, sc, candidates("a"))
		if _, err := uc.SubmitOne(ctx, sc, "nope"); err != batch.ErrTaskNotFound {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("No Batch", func(t *testing.T) {
		uc := newInlineUC(&mockTasksClient{})
		if _, err := uc.SubmitOne(ctx, sc, "id"); err != batch.ErrBatchNotFound {
			t.Fatalf("expected ErrBatchNotFound, got %v", err)
		}
	})

	t.Run("Not Authenticated", func(t *testing.T) {
		client := &mockTasksClient{}
		uc := newInlineUC(client)
		snap, _ := uc.LoadCandidates(ctx, sc, candidates("a"))

		anon := model.Scope{SessionID: sc.SessionID}
		if _, err := uc.SubmitOne(ctx, anon, snap.Tasks[0].ID); err != batch.ErrNotAuthenticated {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
		if client.callCount() != 0 {
			t.Errorf("unauthenticated submit must not issue requests")
		}
	})
}

func TestSubmitAll(t *testing.T) {
	ctx := context.Background()
	sc := testScope()

	t.Run("Partial Then Retry Only Failed", func(t *testing.T) {
		client := &mockTasksClient{failTitles: map[string]error{
			"b": &gtasks.Error{Kind: gtasks.KindUnknown, Message: "backend error"},
		}}
		uc := newInlineUC(client)
		uc.LoadCandidates(ctx, sc, candidates("a", "b", "c"))

		if _, err := uc.SubmitAll(ctx, sc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.callCount() != 3 {
			t.Fatalf("expected 3 creation calls, got %d", client.callCount())
		}

		got, _ := uc.State(ctx, sc)
		if got.Busy {
			t.Fatalf("batch still busy after inline settlement")
		}
		if got.Outcome != "Added 2 tasks. 1 tasks failed. Check individual task statuses." {
			t.Errorf("unexpected outcome: %q", got.Outcome)
		}

		// Second run only retries the failed item; confirmed items untouched.
		client.mu.Lock()
		delete(client.failTitles, "b")
		client.mu.Unlock()

		if _, err := uc.SubmitAll(ctx, sc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.callCount() != 4 {
			t.Fatalf("expected 1 extra call, got %d total", client.callCount())
		}
		if titles := client.calledTitles(); titles[3] != "b" {
			t.Errorf("expected retry of %q, got %q", "b", titles[3])
		}

		got, _ = uc.State(ctx, sc)
		succeeded, failed := got.Counts()
		if succeeded != 3 || failed != 0 {
			t.Errorf("expected 3 succeeded / 0 failed, got %d/%d", succeeded, failed)
		}
		if got.Outcome != "Successfully added 3 tasks to Google Tasks!" {
			t.Errorf("unexpected outcome: %q", got.Outcome)
		}
	})

	t.Run("All Failed Outcome", func(t *testing.T) {
		client := &mockTasksClient{failTitles: map[string]error{
			"a": &gtasks.Error{Kind: gtasks.KindUnknown, Message: "boom"},
			"b": &gtasks.Error{Kind: gtasks.KindUnknown, Message: "boom"},
		}}
		uc := newInlineUC(client)
		uc.LoadCandidates(ctx, sc, candidates("a", "b"))
		uc.SubmitAll(ctx, sc)

		got, _ := uc.State(ctx, sc)
		if got.Outcome != "All tasks failed to add to Google Tasks. Check individual task statuses." {
			t.Errorf("unexpected outcome: %q", got.Outcome)
		}
	})

	t.Run("Nothing To Submit", func(t *testing.T) {
		client := &mockTasksClient{}
		uc := newInlineUC(client)
		uc.LoadCandidates(ctx, sc, candidates("a"))
		uc.SubmitAll(ctx, sc)
		before := client.callCount()

		_, err := uc.SubmitAll(ctx, sc)
		if err != batch.ErrNothingToSubmit {
			t.Fatalf("expected ErrNothingToSubmit, got %v", err)
		}
		if client.callCount() != before {
			t.Errorf("no eligible items must mean zero network calls")
		}
	})

	t.Run("Empty Batch", func(t *testing.T) {
		uc := newInlineUC(&mockTasksClient{})
		uc.LoadCandidates(ctx, sc, nil)
		if _, err := uc.SubmitAll(ctx, sc); err != batch.ErrNothingToSubmit {
			t.Fatalf("expected ErrNothingToSubmit, got %v", err)
		}
	})

	t.Run("Auth Failure Is Terminal Per Item", func(t *testing.T) {
		client := &mockTasksClient{failTitles: map[string]error{
			"a": &gtasks.Error{Kind: gtasks.KindNotAuthenticated, Message: "authentication error with Google Tasks API. Please sign in again"},
		}}
		uc := newInlineUC(client)
		uc.LoadCandidates(ctx, sc, candidates("a", "b"))
		uc.SubmitAll(ctx, sc)

		got, _ := uc.State(ctx, sc)
		if got.Tasks[0].Status != model.StatusFailed {
			t.Fatalf("expected failed, got %s", got.Tasks[0].Status)
		}
		if !strings.Contains(got.Tasks[0].Message, "sign in again") {
			t.Errorf("expected re-auth hint, got %q", got.Tasks[0].Message)
		}
		// Sibling unaffected, and no automatic retry was attempted.
		if got.Tasks[1].Status != model.StatusSuccess {
			t.Errorf("sibling submission must not be blocked, got %s", got.Tasks[1].Status)
		}
		if client.callCount() != 2 {
			t.Errorf("expected exactly 2 calls (no auto retry), got %d", client.callCount())
		}
	})
}

func TestBusyDerivation(t *testing.T) {
	ctx := context.Background()
	sc := testScope()

	release := make(chan struct{})
	client := &mockTasksClient{release: release}
	uc := New(&mockLogger{}, client, Config{}) // real goroutines
	uc.LoadCandidates(ctx, sc, candidates("a", "b"))

	if _, err := uc.SubmitAll(ctx, sc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, _ := uc.State(ctx, sc)
	if !snap.Busy {
		t.Fatalf("expected busy while submissions are in flight")
	}
	if snap.Outcome != "" {
		t.Errorf("outcome must be empty while busy, got %q", snap.Outcome)
	}
	for _, task := range snap.Tasks {
		if task.Status != model.StatusPending {
			t.Errorf("expected all selected items pending, got %s", task.Status)
		}
	}

	// Submission actions are disabled while busy.
	if _, err := uc.SubmitAll(ctx, sc); err != batch.ErrBatchBusy {
		t.Errorf("expected ErrBatchBusy, got %v", err)
	}

	close(release)

	deadline := time.After(2 * time.Second)
	for {
		snap, _ = uc.State(ctx, sc)
		if !snap.Busy {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("batch never settled")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if snap.Outcome != "Successfully added 2 tasks to Google Tasks!" {
		t.Errorf("unexpected outcome: %q", snap.Outcome)
	}
}

func TestLateCompletionIgnored(t *testing.T) {
	ctx := context.Background()
	sc := testScope()

	var captured []func()
	client := &mockTasksClient{}
	uc := New(&mockLogger{}, client, Config{})
	uc.launch = func(fn func()) { captured = append(captured, fn) }

	snap, _ := uc.LoadCandidates(ctx, sc, candidates("old"))
	if _, err := uc.SubmitOne(ctx, sc, snap.Tasks[0].ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Candidates are reloaded while the creation request is still in flight.
	uc.LoadCandidates(ctx, sc, candidates("new"))

	// The old completion now arrives; its id is gone from the collection.
	for _, fn := range captured {
		fn()
	}

	got, _ := uc.State(ctx, sc)
	if len(got.Tasks) != 1 || got.Tasks[0].Title != "new" {
		t.Fatalf("current collection mutated by late completion: %+v", got.Tasks)
	}
	if got.Tasks[0].Status != model.StatusIdle {
		t.Errorf("expected idle, got %s", got.Tasks[0].Status)
	}
}
