package tracker

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedResponse means a poll response carried no status field
	// before any terminal state was reached.
	ErrUnexpectedResponse = errors.New("unexpected response format: no status field")

	// ErrMissingTranscript means the service reported the job finished but
	// the response carried no transcript payload.
	ErrMissingTranscript = errors.New("no transcript found in final results")

	// ErrPollLimitExceeded means the configured poll cap was reached before
	// the job hit a terminal state.
	ErrPollLimitExceeded = errors.New("poll limit exceeded")
)

// JobError reports a job the service marked as failed. Raw carries the last
// polled response body for diagnostics.
type JobError struct {
	Status string
	Raw    []byte
}

func (e *JobError) Error() string {
	return fmt.Sprintf("transcription failed: %s", e.Raw)
}
