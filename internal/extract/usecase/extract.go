package usecase

import (
	"context"
	"strings"

	"mindlyst/internal/extract"
	"mindlyst/internal/model"
)

// Extract runs the remote extraction and, only on success, replaces the
// session's batch with the fresh candidates. A failed extraction leaves the
// previous batch untouched.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, ip extract.ExtractInput) (extract.ExtractOutput, error) {
	text := strings.TrimSpace(ip.Text)
	if len(text) < uc.minTextLength {
		return extract.ExtractOutput{}, extract.ErrTextTooShort
	}

	tasks, err := uc.extractor.ExtractTasks(ctx, text)
	if err != nil {
		uc.l.Warnf(ctx, "extract.usecase.Extract: %v", err)
		return extract.ExtractOutput{}, err
	}

	candidates := make([]model.CandidateTask, len(tasks))
	for i, t := range tasks {
		candidates[i] = model.CandidateTask{Title: t.Title, Notes: t.Notes}
	}

	snap, err := uc.batchUC.LoadCandidates(ctx, sc, candidates)
	if err != nil {
		uc.l.Errorf(ctx, "extract.usecase.Extract: load candidates: %v", err)
		return extract.ExtractOutput{}, err
	}

	uc.l.Infof(ctx, "extract.usecase.Extract: session %s loaded %d candidates", sc.SessionID, len(candidates))
	return extract.ExtractOutput{
		Model:    uc.extractor.Model(),
		Snapshot: snap,
	}, nil
}
