package extract

import (
	"mindlyst/internal/batch"
)

type ExtractInput struct {
	Text string
}

type ExtractOutput struct {
	// Model is the inference model that produced the candidates.
	Model string
	// Snapshot is the batch state after the candidates replaced the
	// session's previous collection.
	Snapshot batch.Snapshot
}
