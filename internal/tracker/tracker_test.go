package tracker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/melvinjones/meeting-pipeline/internal/logger"
	"github.com/melvinjones/meeting-pipeline/internal/speechtext"
)

// scriptedQuerier replays a fixed sequence of raw response bodies.
type scriptedQuerier struct {
	bodies []string
	calls  int
}

func (q *scriptedQuerier) Results(ctx context.Context, jobID string) (*speechtext.StatusResponse, error) {
	if q.calls >= len(q.bodies) {
		return nil, fmt.Errorf("no scripted response for poll %d", q.calls+1)
	}
	body := q.bodies[q.calls]
	q.calls++
	return speechtext.DecodeStatusResponse([]byte(body))
}

func newTestTracker(q StatusQuerier, maxPolls int) *implTracker {
	return &implTracker{
		client:   q,
		interval: 0,
		maxPolls: maxPolls,
		now:      func() time.Time { return time.Date(2026, 3, 14, 10, 30, 45, 0, time.UTC) },
		logger:   logger.New("error"),
	}
}

func TestAwaitCompletionFinished(t *testing.T) {
	q := &scriptedQuerier{bodies: []string{
		`{"status": "processing"}`,
		`{"status": "processing", "remaining seconds": 120}`,
		`{"status": "finished", "remaining seconds": 90, "results": {"transcript": "hello world"}}`,
	}}

	var sink bytes.Buffer
	transcript, remaining, err := newTestTracker(q, 0).AwaitCompletion(context.Background(), "task-1", &sink)
	if err != nil {
		t.Fatalf("AwaitCompletion() error = %v", err)
	}

	if transcript != "hello world" {
		t.Errorf("transcript = %q, want %q", transcript, "hello world")
	}
	if remaining == nil || *remaining != 90 {
		t.Errorf("remaining = %v, want 90", remaining)
	}

	log := sink.String()
	if got := strings.Count(log, "POLL #"); got != 3 {
		t.Errorf("poll blocks = %d, want 3", got)
	}
	if got := strings.Count(log, MarkerFinalTranscript); got != 1 {
		t.Errorf("terminal blocks = %d, want 1", got)
	}
	for i, status := range []string{"processing", "processing", "finished"} {
		header := fmt.Sprintf("POLL #%d - Status: %s", i+1, status)
		if !strings.Contains(log, header) {
			t.Errorf("sink missing header %q", header)
		}
	}
	if !strings.Contains(log, MarkerFinalTranscript+"\nhello world\n") {
		t.Error("terminal block does not carry the transcript")
	}
}

func TestAwaitCompletionFailed(t *testing.T) {
	q := &scriptedQuerier{bodies: []string{
		`{"status": "failed", "error": "bad audio"}`,
	}}

	var sink bytes.Buffer
	_, _, err := newTestTracker(q, 0).AwaitCompletion(context.Background(), "task-1", &sink)

	var jobErr *JobError
	if !errors.As(err, &jobErr) {
		t.Fatalf("error = %v, want *JobError", err)
	}
	if !strings.Contains(string(jobErr.Raw), "bad audio") {
		t.Errorf("JobError.Raw = %s, want raw response body", jobErr.Raw)
	}

	log := sink.String()
	if got := strings.Count(log, "POLL #"); got != 1 {
		t.Errorf("poll blocks = %d, want 1", got)
	}
	if strings.Contains(log, MarkerFinalTranscript) {
		t.Error("sink must not contain a terminal block for a failed job")
	}
}

func TestAwaitCompletionMissingStatus(t *testing.T) {
	q := &scriptedQuerier{bodies: []string{`{}`}}

	var sink bytes.Buffer
	_, _, err := newTestTracker(q, 0).AwaitCompletion(context.Background(), "task-1", &sink)
	if !errors.Is(err, ErrUnexpectedResponse) {
		t.Fatalf("error = %v, want ErrUnexpectedResponse", err)
	}

	// Detection happens before counting and labeling, so nothing is persisted.
	if sink.Len() != 0 {
		t.Errorf("sink = %q, want empty", sink.String())
	}
}

func TestAwaitCompletionMissingStatusMidStream(t *testing.T) {
	q := &scriptedQuerier{bodies: []string{
		`{"status": "queued"}`,
		`{"status": "processing"}`,
		`{"something": "else"}`,
	}}

	var sink bytes.Buffer
	_, _, err := newTestTracker(q, 0).AwaitCompletion(context.Background(), "task-1", &sink)
	if !errors.Is(err, ErrUnexpectedResponse) {
		t.Fatalf("error = %v, want ErrUnexpectedResponse", err)
	}
	if got := strings.Count(sink.String(), "POLL #"); got != 2 {
		t.Errorf("poll blocks = %d, want 2", got)
	}
}

func TestAwaitCompletionMissingTranscript(t *testing.T) {
	q := &scriptedQuerier{bodies: []string{
		`{"status": "finished", "results": {}}`,
	}}

	var sink bytes.Buffer
	_, _, err := newTestTracker(q, 0).AwaitCompletion(context.Background(), "task-1", &sink)
	if !errors.Is(err, ErrMissingTranscript) {
		t.Fatalf("error = %v, want ErrMissingTranscript", err)
	}
	if strings.Contains(sink.String(), MarkerFinalTranscript) {
		t.Error("sink must not contain a terminal block when the transcript is missing")
	}
}

func TestAwaitCompletionQuotaCarriesOver(t *testing.T) {
	q := &scriptedQuerier{bodies: []string{
		`{"status": "processing", "remaining seconds": 120}`,
		`{"status": "finished", "results": {"transcript": "done"}}`,
	}}

	var sink bytes.Buffer
	_, remaining, err := newTestTracker(q, 0).AwaitCompletion(context.Background(), "task-1", &sink)
	if err != nil {
		t.Fatalf("AwaitCompletion() error = %v", err)
	}
	if remaining == nil || *remaining != 120 {
		t.Errorf("remaining = %v, want 120 carried over from the earlier poll", remaining)
	}
	if !strings.Contains(sink.String(), "Remaining seconds: 120\n") {
		t.Error("sink missing remaining-seconds line")
	}
}

func TestAwaitCompletionPollLimit(t *testing.T) {
	q := &scriptedQuerier{bodies: []string{
		`{"status": "processing"}`,
		`{"status": "processing"}`,
		`{"status": "processing"}`,
	}}

	var sink bytes.Buffer
	_, _, err := newTestTracker(q, 2).AwaitCompletion(context.Background(), "task-1", &sink)
	if !errors.Is(err, ErrPollLimitExceeded) {
		t.Fatalf("error = %v, want ErrPollLimitExceeded", err)
	}
	if got := strings.Count(sink.String(), "POLL #"); got != 2 {
		t.Errorf("poll blocks = %d, want 2", got)
	}
}

func TestAwaitCompletionQueryErrorPropagates(t *testing.T) {
	q := &scriptedQuerier{bodies: nil}

	var sink bytes.Buffer
	_, _, err := newTestTracker(q, 0).AwaitCompletion(context.Background(), "task-1", &sink)
	if err == nil {
		t.Fatal("expected query error to propagate")
	}
	if sink.Len() != 0 {
		t.Errorf("sink = %q, want empty", sink.String())
	}
}

func TestWriteSnapshotSections(t *testing.T) {
	body := `{
		"status": "processing",
		"remaining seconds": 301.5,
		"results": {
			"transcript": "partial text",
			"word_time_offsets": [
				{"start_time": 0.5, "end_time": 1.25, "word": "hello", "confidence": 0.987}
			],
			"speakers": [{"speaker": "A", "start_time": 0}],
			"summary": "short summary"
		}
	}`
	resp, err := speechtext.DecodeStatusResponse([]byte(body))
	if err != nil {
		t.Fatal(err)
	}

	var sink bytes.Buffer
	ts := time.Date(2026, 3, 14, 9, 5, 7, 0, time.UTC)
	if err := writeSnapshot(&sink, 4, ts, resp); err != nil {
		t.Fatalf("writeSnapshot() error = %v", err)
	}

	log := sink.String()
	wants := []string{
		"POLL #4 - Status: processing\n",
		"Timestamp: 09:05:07\n",
		"Remaining seconds: 301.5\n",
		MarkerTranscriptContent + "\npartial text\n",
		MarkerWordTimestamps + "\n[0.50s-1.25s] hello (conf: 0.987)\n",
		MarkerSpeakerInfo,
		"\"speaker\": \"A\"",
		MarkerAutoSummary + "\nshort summary\n",
		strings.Repeat("-", 60),
	}
	for _, want := range wants {
		if !strings.Contains(log, want) {
			t.Errorf("snapshot missing %q\ngot:\n%s", want, log)
		}
	}
}

func TestWriteSnapshotOmitsAbsentSections(t *testing.T) {
	resp, err := speechtext.DecodeStatusResponse([]byte(`{"status": "queued"}`))
	if err != nil {
		t.Fatal(err)
	}

	var sink bytes.Buffer
	if err := writeSnapshot(&sink, 1, time.Now(), resp); err != nil {
		t.Fatalf("writeSnapshot() error = %v", err)
	}

	log := sink.String()
	for _, marker := range []string{MarkerTranscriptContent, MarkerWordTimestamps, MarkerSpeakerInfo, MarkerAutoSummary, "Remaining seconds:"} {
		if strings.Contains(log, marker) {
			t.Errorf("snapshot for bare status must omit %q", marker)
		}
	}
}

func TestWriteSinkHeader(t *testing.T) {
	var sink bytes.Buffer
	ts := time.Date(2026, 3, 14, 15, 4, 0, 0, time.UTC)
	if err := WriteSinkHeader(&sink, "standup_2026-03-14", ts); err != nil {
		t.Fatalf("WriteSinkHeader() error = %v", err)
	}

	log := sink.String()
	if !strings.Contains(log, "FULL TRANSCRIPT - standup_2026-03-14\n") {
		t.Errorf("header missing recording name:\n%s", log)
	}
	if !strings.Contains(log, "Generated: March 14, 2026 at 03:04 PM\n") {
		t.Errorf("header missing generated timestamp:\n%s", log)
	}
	if !strings.Contains(log, strings.Repeat("=", 80)) {
		t.Errorf("header missing rule:\n%s", log)
	}
}
