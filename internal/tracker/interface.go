package tracker

import (
	"context"
	"io"

	"github.com/melvinjones/meeting-pipeline/internal/speechtext"
)

// Tracker follows one submitted transcription job to a terminal state,
// recording every observed status snapshot to the sink along the way.
type Tracker interface {
	// AwaitCompletion polls the job until it finishes or fails. Every polled
	// snapshot is appended to sink in arrival order before its status is
	// acted on. On success it returns the final transcript together with the
	// last remaining-quota value the service reported, if any.
	AwaitCompletion(ctx context.Context, jobID string, sink io.Writer) (string, *float64, error)
}

// StatusQuerier is the slice of the SpeechText client the tracker needs.
type StatusQuerier interface {
	Results(ctx context.Context, jobID string) (*speechtext.StatusResponse, error)
}
