package document

import "context"

// Renderer writes the pipeline's output documents. The transcript renderer
// prefers the snapshot log when one is available, since it carries the
// terminal transcript plus the pointer-worthy detail sections.
type Renderer interface {
	WriteTranscript(ctx context.Context, transcript, sinkPath, name, outPath string) error
	WriteSummary(ctx context.Context, summary, name, outPath string) error
}
