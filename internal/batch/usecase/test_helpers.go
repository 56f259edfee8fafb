package usecase

import (
	"context"
	"sync"

	"mindlyst/pkg/gtasks"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockTasksClient records creation calls and fails selected titles.
// When release is non-nil every call blocks until the channel is closed,
// which lets tests observe the busy state mid-flight.
type mockTasksClient struct {
	mu         sync.Mutex
	calls      []gtasks.CreateTaskRequest
	failTitles map[string]error
	release    chan struct{}
}

func (m *mockTasksClient) CreateTask(ctx context.Context, req gtasks.CreateTaskRequest) (*gtasks.Confirmation, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	release := m.release
	err := m.failTitles[req.Title]
	m.mu.Unlock()

	if release != nil {
		<-release
	}
	if err != nil {
		return nil, err
	}
	return &gtasks.Confirmation{
		TaskID:    "gt-" + req.ClientID,
		TaskTitle: req.Title,
		Message:   "Task \"" + req.Title + "\" created successfully!",
		ClientID:  req.ClientID,
	}, nil
}

func (m *mockTasksClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockTasksClient) calledTitles() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	titles := make([]string, 0, len(m.calls))
	for _, c := range m.calls {
		titles = append(titles, c.Title)
	}
	return titles
}
