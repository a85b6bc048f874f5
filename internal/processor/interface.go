package processor

import "context"

// Processor drives the pipeline. Run performs one batch pass over the
// downloads directory; Process handles a single recording end to end and is
// also the handler for watch mode.
type Processor interface {
	Run(ctx context.Context) error
	Process(ctx context.Context, recordingPath string) error
}
