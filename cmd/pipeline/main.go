package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/melvinjones/meeting-pipeline/internal/config"
	"github.com/melvinjones/meeting-pipeline/internal/document"
	"github.com/melvinjones/meeting-pipeline/internal/logger"
	"github.com/melvinjones/meeting-pipeline/internal/processor"
	"github.com/melvinjones/meeting-pipeline/internal/speechtext"
	"github.com/melvinjones/meeting-pipeline/internal/summarizer"
	"github.com/melvinjones/meeting-pipeline/internal/tracker"
	"github.com/melvinjones/meeting-pipeline/internal/watcher"
)

func main() {
	ctx := context.Background()

	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Transcription Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Downloads: %s", cfg.Paths.Downloads)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)

	speechKey, geminiKeys, ok := checkEnvironment(ctx, log)
	if !ok {
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
		log.Error(ctx, "Failed to create output directory: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	speech := speechtext.New(cfg.SpeechText, speechKey, log)
	trk := tracker.New(speech, time.Duration(cfg.SpeechText.PollIntervalSeconds)*time.Second, cfg.SpeechText.MaxPolls, log)
	sum := summarizer.New(geminiKeys, cfg.Gemini.Model, cfg.Gemini.PromptTemplate, log)
	rend := document.New(log)
	proc := processor.New(cfg, speech, trk, sum, rend, log)

	if !cfg.Watch.Enabled {
		if err := proc.Run(ctx); err != nil {
			log.Error(ctx, "Pipeline failed: %v", err)
			os.Exit(1)
		}
		return
	}

	runWatchMode(ctx, cfg, proc, log)
}

// runWatchMode performs an initial batch pass and then keeps watching the
// downloads directory until interrupted.
func runWatchMode(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger) {
	if err := proc.Run(ctx); err != nil {
		log.Error(ctx, "Initial batch pass failed: %v", err)
	}

	w, err := watcher.New(cfg.Paths.Downloads, cfg.Recordings.Extensions, proc.Process, log, cfg.Watch.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s for new recordings. Press Ctrl+C to stop", cfg.Paths.Downloads)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
}

// checkEnvironment verifies the API credentials are present and reports every
// missing variable with the line to add to .env.
func checkEnvironment(ctx context.Context, log logger.Logger) (speechKey string, geminiKeys []string, ok bool) {
	speechKey = os.Getenv("SPEECHTEXT_API_KEY")
	rawGemini := os.Getenv("GEMINI_API_KEYS")

	var missing []string
	if speechKey == "" {
		missing = append(missing, "SPEECHTEXT_API_KEY")
	}
	if rawGemini == "" {
		missing = append(missing, "GEMINI_API_KEYS")
	}

	if len(missing) > 0 {
		log.Error(ctx, "Missing required environment variables:")
		for _, v := range missing {
			log.Error(ctx, "   - %s", v)
		}
		log.Error(ctx, "Please set these in your .env file:")
		for _, v := range missing {
			log.Error(ctx, "   %s=your_api_key_here", v)
		}
		return "", nil, false
	}

	for _, key := range strings.Split(rawGemini, ",") {
		if key = strings.TrimSpace(key); key != "" {
			geminiKeys = append(geminiKeys, key)
		}
	}
	if len(geminiKeys) == 0 {
		log.Error(ctx, "GEMINI_API_KEYS is set but contains no keys")
		return "", nil, false
	}

	return speechKey, geminiKeys, true
}
