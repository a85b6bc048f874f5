package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/melvinjones/meeting-pipeline/internal/speechtext"
)

// Marker strings used in the snapshot log. The document renderer locates
// transcript text by scanning for these exact values, so they are a contract
// with downstream consumers, not incidental formatting.
const (
	MarkerTranscriptContent = "TRANSCRIPT CONTENT:"
	MarkerWordTimestamps    = "WORD-LEVEL TIMESTAMPS:"
	MarkerSpeakerInfo       = "SPEAKER INFORMATION:"
	MarkerAutoSummary       = "AUTO-GENERATED SUMMARY:"
	MarkerFinalTranscript   = "FINAL COMPLETE TRANSCRIPT:"
)

// WriteSinkHeader writes the log preamble: recording name, generation time
// and a rule. Called once by the owner of the sink before polling starts.
func WriteSinkHeader(w io.Writer, name string, t time.Time) error {
	var b strings.Builder
	fmt.Fprintf(&b, "FULL TRANSCRIPT - %s\n", name)
	fmt.Fprintf(&b, "Generated: %s\n", t.Format("January 02, 2006 at 03:04 PM"))
	b.WriteString(strings.Repeat("=", 80) + "\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// writeSnapshot appends one labeled poll block. Sections for transcript,
// word timings, speakers and summary appear only when the response carries
// them; absent fields are simply omitted.
func writeSnapshot(w io.Writer, poll int, ts time.Time, resp *speechtext.StatusResponse) error {
	var b strings.Builder

	fmt.Fprintf(&b, "POLL #%d - Status: %s\n", poll, *resp.Status)
	fmt.Fprintf(&b, "Timestamp: %s\n", ts.Format("15:04:05"))

	if resp.RemainingSeconds != nil {
		fmt.Fprintf(&b, "Remaining seconds: %s\n", strconv.FormatFloat(*resp.RemainingSeconds, 'f', -1, 64))
	}

	if r := resp.Results; r != nil {
		if r.Transcript != nil {
			b.WriteString(MarkerTranscriptContent + "\n")
			b.WriteString(*r.Transcript)
			b.WriteString("\n")
		}

		if len(r.WordTimeOffsets) > 0 {
			b.WriteString("\n" + MarkerWordTimestamps + "\n")
			for _, wo := range r.WordTimeOffsets {
				fmt.Fprintf(&b, "[%.2fs-%.2fs] %s (conf: %.3f)\n", wo.StartTime, wo.EndTime, wo.Word, wo.Confidence)
			}
		}

		if len(r.Speakers) > 0 {
			b.WriteString("\n" + MarkerSpeakerInfo + "\n")
			for _, sp := range r.Speakers {
				var indented bytes.Buffer
				if err := json.Indent(&indented, sp, "", "  "); err != nil {
					fmt.Fprintf(&b, "Speaker: %s\n", sp)
					continue
				}
				fmt.Fprintf(&b, "Speaker: %s\n", indented.String())
			}
		}

		if r.Summary != nil {
			b.WriteString("\n" + MarkerAutoSummary + "\n")
			b.WriteString(*r.Summary)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + strings.Repeat("-", 60) + "\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// writeTerminal appends the final block carrying the complete transcript.
func writeTerminal(w io.Writer, transcript string) error {
	var b strings.Builder
	b.WriteString("FINAL TRANSCRIPTION COMPLETE\n")
	b.WriteString(strings.Repeat("=", 80) + "\n")
	b.WriteString(MarkerFinalTranscript + "\n")
	b.WriteString(transcript)
	b.WriteString("\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}
