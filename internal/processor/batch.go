package processor

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Run performs one batch pass: discover recordings in the downloads
// directory, move them into the output workspace, skip those already
// transcribed, and process the rest. A failing recording is logged and
// counted; it never stops the batch.
func (p *implProcessor) Run(ctx context.Context) error {
	p.logger.Info(ctx, "Starting batch processing...")

	found, err := p.findRecordings(ctx)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		p.logger.Info(ctx, "No recordings found in %s", p.cfg.Paths.Downloads)
		return nil
	}

	moved := p.moveRecordings(ctx, found)

	todo := p.needsTranscription(ctx, moved)
	if len(todo) == 0 {
		p.logger.Info(ctx, "All recordings already have transcripts")
		return nil
	}

	p.logger.Info(ctx, "Processing %d recordings...", len(todo))

	successCount := 0
	for _, path := range todo {
		if err := p.Process(ctx, path); err != nil {
			p.logger.Error(ctx, "Failed to process %s: %v", filepath.Base(path), err)
			continue
		}
		successCount++
	}

	if minutes := p.RemainingMinutes(); minutes != nil {
		p.logger.Info(ctx, "SpeechText.AI remaining time: %.1f minutes", *minutes)
	} else {
		p.logger.Warn(ctx, "Could not determine remaining API time")
	}

	p.logger.Info(ctx, "Batch processing complete: %d/%d succeeded", successCount, len(todo))
	return nil
}

// findRecordings lists files in the downloads directory with a configured
// recording extension.
func (p *implProcessor) findRecordings(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(p.cfg.Paths.Downloads)
	if err != nil {
		if os.IsNotExist(err) {
			p.logger.Warn(ctx, "Downloads directory not found: %s", p.cfg.Paths.Downloads)
			return nil, nil
		}
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if p.isRecording(e.Name()) {
			files = append(files, filepath.Join(p.cfg.Paths.Downloads, e.Name()))
		}
	}
	sort.Strings(files)

	p.logger.Info(ctx, "Found %d recordings in downloads", len(files))
	return files, nil
}

func (p *implProcessor) isRecording(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range p.cfg.Recordings.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

// moveRecordings moves recordings into the output directory. A file already
// present there counts as moved; a file that cannot be moved is dropped from
// the batch with a logged error.
func (p *implProcessor) moveRecordings(ctx context.Context, paths []string) []string {
	var moved []string

	for _, src := range paths {
		dest := filepath.Join(p.cfg.Paths.Output, filepath.Base(src))

		if _, err := os.Stat(dest); err == nil {
			p.logger.Info(ctx, "Already in output directory: %s", filepath.Base(src))
			moved = append(moved, dest)
			continue
		}

		if err := moveFile(src, dest); err != nil {
			p.logger.Error(ctx, "Failed to move %s: %v", filepath.Base(src), err)
			continue
		}

		p.logger.Info(ctx, "Moved: %s", filepath.Base(src))
		moved = append(moved, dest)
	}

	return moved
}

// moveFile renames, falling back to copy-and-remove when the downloads
// directory lives on a different filesystem (the usual case under WSL).
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return err
	}
	return os.Remove(src)
}

// needsTranscription filters to recordings without a transcript document.
func (p *implProcessor) needsTranscription(ctx context.Context, paths []string) []string {
	var todo []string

	for _, path := range paths {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		transcriptDoc := filepath.Join(p.cfg.Paths.Output, base+"_transcript.docx")

		if _, err := os.Stat(transcriptDoc); err == nil {
			p.logger.Info(ctx, "Already transcribed: %s", filepath.Base(path))
			continue
		}

		p.logger.Info(ctx, "Needs transcription: %s", filepath.Base(path))
		todo = append(todo, path)
	}

	return todo
}
