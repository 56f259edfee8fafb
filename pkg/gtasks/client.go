package gtasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"
)

const defaultTaskList = "@default"

// ITasks defines the interface for the Google Tasks client.
// Implementations are safe for concurrent use.
type ITasks interface {
	// CreateTask creates one task in the user's default task list.
	CreateTask(ctx context.Context, req CreateTaskRequest) (*Confirmation, error)
}

// Client wraps the Google Tasks API. A service is built per call because each
// call carries a different user's credential.
type Client struct {
	extraOptions []option.ClientOption
}

var _ ITasks = (*Client)(nil)

// NewClient creates a new Google Tasks client. Extra options (endpoint
// override, custom HTTP client) are applied to every service built.
func NewClient(opts ...option.ClientOption) *Client {
	return &Client{extraOptions: opts}
}

// CreateTask inserts a task into the user's default task list with status
// needsAction. The due date defaults to end of the current day UTC when the
// request does not carry one. Calling this twice for the same logical task
// creates two remote tasks; the caller's status gating is the only guard.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Confirmation, error) {
	if req.AccessToken == "" {
		return nil, &Error{Kind: KindNotAuthenticated, Message: "user not authenticated or access token missing"}
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: req.AccessToken})
	opts := append([]option.ClientOption{option.WithTokenSource(tokenSource)}, c.extraOptions...)

	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: fmt.Sprintf("failed to create tasks service: %v", err)}
	}

	due := req.Due
	if due.IsZero() {
		due = endOfDayUTC(time.Now())
	}

	created, err := svc.Tasks.Insert(defaultTaskList, &tasks.Task{
		Title:  req.Title,
		Notes:  req.Notes,
		Status: "needsAction",
		Due:    due.Format(time.RFC3339),
	}).Context(ctx).Do()
	if err != nil {
		return nil, classifyError(err)
	}

	return &Confirmation{
		TaskID:    created.Id,
		TaskTitle: created.Title,
		Message:   fmt.Sprintf("Task %q created successfully!", created.Title),
		ClientID:  req.ClientID,
	}, nil
}

// classifyError maps a Google API error to a typed creation error.
// 401/403 mean the delegated credential is missing or expired.
func classifyError(err error) *Error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == 401 || apiErr.Code == 403) {
		return &Error{
			Kind:    KindNotAuthenticated,
			Message: "authentication error with Google Tasks API. Please sign in again",
		}
	}
	return &Error{
		Kind:    KindUnknown,
		Message: fmt.Sprintf("failed to create Google Task: %v", err),
	}
}

// endOfDayUTC returns 23:59:59 UTC on the given day.
func endOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
}
