package usecase

import (
	"mindlyst/internal/batch"
	"mindlyst/internal/extract"
	"mindlyst/pkg/hfinference"
	pkgLog "mindlyst/pkg/log"
)

const defaultMinTextLength = 50

// Config tunes the extraction use case.
type Config struct {
	// MinTextLength is the minimum number of characters (after trimming)
	// accepted for extraction. Defaults to 50.
	MinTextLength int
}

type implUseCase struct {
	l             pkgLog.Logger
	extractor     hfinference.IExtractor
	batchUC       batch.UseCase
	minTextLength int
}

var _ extract.UseCase = (*implUseCase)(nil)

// New creates the extraction use case.
func New(l pkgLog.Logger, extractor hfinference.IExtractor, batchUC batch.UseCase, cfg Config) *implUseCase {
	minLen := cfg.MinTextLength
	if minLen <= 0 {
		minLen = defaultMinTextLength
	}
	return &implUseCase{
		l:             l,
		extractor:     extractor,
		batchUC:       batchUC,
		minTextLength: minLen,
	}
}
