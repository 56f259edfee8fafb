package extract

import (
	"context"

	"mindlyst/internal/model"
)

// UseCase runs LLM task extraction over free-form text and loads the
// resulting candidates into the caller's batch.
type UseCase interface {
	Extract(ctx context.Context, sc model.Scope, ip ExtractInput) (ExtractOutput, error)
}
