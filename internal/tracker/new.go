package tracker

import (
	"time"

	"github.com/melvinjones/meeting-pipeline/internal/logger"
)

type implTracker struct {
	client   StatusQuerier
	interval time.Duration
	maxPolls int
	now      func() time.Time
	logger   logger.Logger
}

// New creates a Tracker that polls at the given interval. maxPolls bounds the
// loop; 0 means poll until a terminal state.
func New(client StatusQuerier, interval time.Duration, maxPolls int, log logger.Logger) Tracker {
	return &implTracker{
		client:   client,
		interval: interval,
		maxPolls: maxPolls,
		now:      time.Now,
		logger:   log,
	}
}
