package tracker

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/melvinjones/meeting-pipeline/internal/speechtext"
)

// AwaitCompletion runs the poll loop for one job. The sequence per iteration
// is fixed: query, reject a response with no status field, count the poll,
// persist the snapshot, update the quota value, then act on the status.
// Transport errors from the status query propagate to the caller unmodified.
func (t *implTracker) AwaitCompletion(ctx context.Context, jobID string, sink io.Writer) (string, *float64, error) {
	t.logger.Info(ctx, "Waiting for transcription to complete...")

	pollCount := 0
	var remaining *float64

	for {
		resp, err := t.client.Results(ctx, jobID)
		if err != nil {
			return "", remaining, err
		}

		// A response without a status field ends the loop before anything is
		// counted or persisted for it.
		if resp.Status == nil {
			return "", remaining, ErrUnexpectedResponse
		}
		status := *resp.Status

		pollCount++
		t.logger.Info(ctx, "Task status: %s (Poll #%d)", status, pollCount)

		if err := writeSnapshot(sink, pollCount, t.now(), resp); err != nil {
			return "", remaining, fmt.Errorf("write snapshot: %w", err)
		}

		// Last-non-nil-wins: a response omitting the quota field leaves the
		// previously observed value in place.
		if resp.RemainingSeconds != nil {
			remaining = resp.RemainingSeconds
		}

		if status == speechtext.StatusFailed {
			return "", remaining, &JobError{Status: status, Raw: resp.Raw()}
		}

		if status == speechtext.StatusFinished {
			if resp.Results == nil || resp.Results.Transcript == nil {
				return "", remaining, ErrMissingTranscript
			}
			transcript := *resp.Results.Transcript

			if err := writeTerminal(sink, transcript); err != nil {
				return "", remaining, fmt.Errorf("write terminal block: %w", err)
			}

			t.logger.Info(ctx, "Transcription completed!")
			return transcript, remaining, nil
		}

		if t.maxPolls > 0 && pollCount >= t.maxPolls {
			return "", remaining, fmt.Errorf("%w: job %s still %s after %d polls", ErrPollLimitExceeded, jobID, status, pollCount)
		}

		select {
		case <-ctx.Done():
			return "", remaining, ctx.Err()
		case <-time.After(t.interval):
		}
	}
}
