package document

import (
	"strings"

	"github.com/melvinjones/meeting-pipeline/internal/tracker"
)

const extractFallbackText = "Transcript processing error - please check the full transcript file."

var pollSeparator = strings.Repeat("-", 60)

// extractTranscript pulls transcript text out of a snapshot log. It prefers
// the last terminal block; when the log ended without one (failed or
// interrupted job) it falls back to the first partial transcript section.
func extractTranscript(log string) string {
	if idx := strings.LastIndex(log, tracker.MarkerFinalTranscript); idx >= 0 {
		return strings.TrimSpace(log[idx+len(tracker.MarkerFinalTranscript):])
	}

	idx := strings.Index(log, tracker.MarkerTranscriptContent)
	if idx < 0 {
		return extractFallbackText
	}

	section := log[idx+len(tracker.MarkerTranscriptContent):]
	if cut := strings.Index(section, tracker.MarkerWordTimestamps); cut >= 0 {
		section = section[:cut]
	}
	if cut := strings.Index(section, pollSeparator); cut >= 0 {
		section = section[:cut]
	}

	return strings.TrimSpace(section)
}

// splitParagraphs breaks transcript text into readable paragraphs. Text that
// already has blank-line breaks keeps them; otherwise sentences are grouped
// until a paragraph is long enough.
func splitParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")

	var paragraphs []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, strings.TrimSpace(p))
		}
	}
	if len(paragraphs) != 1 {
		return paragraphs
	}

	sentences := strings.Split(paragraphs[0], ". ")
	paragraphs = nil

	var current strings.Builder
	sentenceCount := 0

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			paragraphs = append(paragraphs, s)
		}
		current.Reset()
		sentenceCount = 0
	}

	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		current.WriteString(sentence)
		if !strings.HasSuffix(sentence, ".") {
			current.WriteString(". ")
		} else {
			current.WriteString(" ")
		}
		sentenceCount++

		if (sentenceCount >= 3 && current.Len() > 200) || sentenceCount >= 5 {
			flush()
		}
	}
	flush()

	return paragraphs
}
