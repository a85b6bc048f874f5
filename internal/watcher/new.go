package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/melvinjones/meeting-pipeline/internal/logger"
)

// New creates a Watcher over the downloads directory. Recordings matching the
// given extensions are handed to the handler, at most maxConcurrent at once.
func New(downloadsDir string, extensions []string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(downloadsDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		downloadsDir:  downloadsDir,
		extensions:    extensions,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
	}, nil
}
