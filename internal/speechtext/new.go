package speechtext

import (
	"net/http"
	"time"

	"github.com/melvinjones/meeting-pipeline/internal/config"
	"github.com/melvinjones/meeting-pipeline/internal/logger"
)

type implClient struct {
	cfg        config.SpeechTextConfig
	apiKey     string
	httpClient *http.Client
	logger     logger.Logger
}

// New creates a new SpeechText.AI Client instance
func New(cfg config.SpeechTextConfig, apiKey string, log logger.Logger) Client {
	return &implClient{
		cfg:    cfg,
		apiKey: apiKey,
		httpClient: &http.Client{
			// Uploads of long recordings can take a while; polling calls are
			// small but share the same client.
			Timeout: 5 * time.Minute,
		},
		logger: log,
	}
}
