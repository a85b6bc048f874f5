package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/melvinjones/meeting-pipeline/internal/tracker"
)

// Process runs one recording through the full pipeline: submit, track to
// completion, render the transcript document, summarize, render the summary
// document. The snapshot log survives even when a later step fails.
func (p *implProcessor) Process(ctx context.Context, recordingPath string) error {
	startTime := time.Now()
	base := strings.TrimSuffix(filepath.Base(recordingPath), filepath.Ext(recordingPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing: %s", filepath.Base(recordingPath))
	p.logger.Info(ctx, "========================================")

	sinkPath := filepath.Join(p.cfg.Paths.Output, base+"_full_transcript.txt")
	sink, err := os.Create(sinkPath)
	if err != nil {
		return fmt.Errorf("create snapshot log: %w", err)
	}
	defer sink.Close()

	if err := tracker.WriteSinkHeader(sink, base, time.Now()); err != nil {
		return fmt.Errorf("write snapshot log header: %w", err)
	}

	// Step 1: upload the recording
	jobID, err := p.speech.Submit(ctx, recordingPath)
	if err != nil {
		return fmt.Errorf("submit recording: %w", err)
	}

	// Step 2: track the job, accumulating snapshots in the log
	transcript, remaining, err := p.tracker.AwaitCompletion(ctx, jobID, sink)
	p.setRemaining(remaining)
	if err != nil {
		return fmt.Errorf("track job %s: %w", jobID, err)
	}

	// Step 3: transcript document
	transcriptDoc := filepath.Join(p.cfg.Paths.Output, base+"_transcript.docx")
	if err := p.renderer.WriteTranscript(ctx, transcript, sinkPath, base, transcriptDoc); err != nil {
		return fmt.Errorf("render transcript: %w", err)
	}

	// Step 4: summary
	summary, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	// Step 5: summary document
	summaryDoc := filepath.Join(p.cfg.Paths.Output, base+"_summary.docx")
	if err := p.renderer.WriteSummary(ctx, summary, base, summaryDoc); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}

	p.logger.Info(ctx, "Completed %s in %s", filepath.Base(recordingPath), time.Since(startTime).Round(time.Second))
	return nil
}
