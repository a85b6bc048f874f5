package document

import (
	"time"

	"github.com/melvinjones/meeting-pipeline/internal/logger"
)

type implRenderer struct {
	now    func() time.Time
	logger logger.Logger
}

// New creates a new document Renderer instance
func New(log logger.Logger) Renderer {
	return &implRenderer{
		now:    time.Now,
		logger: log,
	}
}
