package tasklist

import (
	"context"

	"mindlyst/internal/model"
)

// UseCase manages the local date-scoped task list. Every operation is scoped
// to the signed-in user; rows belonging to other users are invisible.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
