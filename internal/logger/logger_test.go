package logger

import (
	"context"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		message    string
		want       bool
	}{
		{"debug passes at debug", "debug", "debug", true},
		{"info passes at debug", "debug", "info", true},
		{"error passes at debug", "debug", "error", true},
		{"debug filtered at info", "info", "debug", false},
		{"info passes at info", "info", "info", true},
		{"info filtered at warn", "warn", "info", false},
		{"warn passes at warn", "warn", "warn", true},
		{"warn filtered at error", "error", "warn", false},
		{"unknown configured level defaults to info", "verbose", "debug", false},
		{"unknown configured level still logs info", "verbose", "info", true},
		{"unknown message level always logs", "error", "trace", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.configured).(*implLogger)
			if got := l.shouldLog(tt.message); got != tt.want {
				t.Errorf("shouldLog(%q) with level %q = %v, want %v", tt.message, tt.configured, got, tt.want)
			}
		})
	}
}

func TestLogMethods(t *testing.T) {
	ctx := context.Background()

	for _, level := range []string{"debug", "info", "warn", "error", "bogus"} {
		log := New(level)
		if log == nil {
			t.Fatalf("New(%q) returned nil", level)
		}

		// All four methods must accept printf args without panicking.
		log.Debug(ctx, "processing %s", "standup.webm")
		log.Info(ctx, "poll #%d status %s", 3, "processing")
		log.Warn(ctx, "retrying key %d", 2)
		log.Error(ctx, "upload failed: %v", context.Canceled)
	}
}
