package processor

import (
	"sync"

	"github.com/melvinjones/meeting-pipeline/internal/config"
	"github.com/melvinjones/meeting-pipeline/internal/document"
	"github.com/melvinjones/meeting-pipeline/internal/logger"
	"github.com/melvinjones/meeting-pipeline/internal/speechtext"
	"github.com/melvinjones/meeting-pipeline/internal/summarizer"
	"github.com/melvinjones/meeting-pipeline/internal/tracker"
)

type implProcessor struct {
	cfg        *config.Config
	speech     speechtext.Client
	tracker    tracker.Tracker
	summarizer summarizer.Summarizer
	renderer   document.Renderer
	logger     logger.Logger

	// Last quota value any job reported. Guarded because watch mode may run
	// several recordings at once.
	mu               sync.Mutex
	remainingSeconds *float64
}

// New creates a new Processor instance
func New(cfg *config.Config, speech speechtext.Client, trk tracker.Tracker, sum summarizer.Summarizer, rend document.Renderer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		speech:     speech,
		tracker:    trk,
		summarizer: sum,
		renderer:   rend,
		logger:     log,
	}
}

func (p *implProcessor) setRemaining(v *float64) {
	if v == nil {
		return
	}
	p.mu.Lock()
	p.remainingSeconds = v
	p.mu.Unlock()
}

// RemainingMinutes converts the last observed quota value to minutes for
// operator display. Nil when no job ever reported one.
func (p *implProcessor) RemainingMinutes() *float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.remainingSeconds == nil {
		return nil
	}
	minutes := *p.remainingSeconds / 60.0
	return &minutes
}
