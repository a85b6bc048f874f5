package speechtext

import "context"

// Client defines the operations the pipeline needs from the SpeechText.AI API:
// submitting a recording for recognition and querying the state of a
// previously submitted job.
type Client interface {
	Submit(ctx context.Context, filePath string) (string, error)
	Results(ctx context.Context, jobID string) (*StatusResponse, error)
}
