package summarizer

import (
	"sync"

	"github.com/melvinjones/meeting-pipeline/internal/logger"
)

type implSummarizer struct {
	apiKeys      []string
	model        string
	templatePath string
	logger       logger.Logger

	// Watch mode shares one Summarizer across concurrent recordings, so the
	// lazily loaded template and the rotating key index need the lock.
	mu         sync.Mutex
	currentKey int
	template   string
}

// New creates a Summarizer that rotates through the supplied Gemini API keys.
// The prompt template is loaded lazily from templatePath on first use; a
// default template is written there when the file does not exist yet.
func New(apiKeys []string, model, templatePath string, log logger.Logger) Summarizer {
	return &implSummarizer{
		apiKeys:      apiKeys,
		model:        model,
		templatePath: templatePath,
		logger:       log,
	}
}
