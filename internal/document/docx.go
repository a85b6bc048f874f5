package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13

	titleSize   = 16
	headingSize = 14
)

var reBold = regexp.MustCompile(`\*\*(.+?)\*\*`)

// WriteTranscript renders the final transcript as a docx document. When a
// snapshot log exists its contents win over the passed transcript, and the
// document points readers at the log for timestamps and speaker detail.
func (r *implRenderer) WriteTranscript(ctx context.Context, transcript, sinkPath, name, outPath string) error {
	r.logger.Info(ctx, "Creating transcript document: %s", filepath.Base(outPath))

	body := transcript
	haveLog := false
	if sinkPath != "" {
		if data, err := os.ReadFile(sinkPath); err == nil {
			body = extractTranscript(string(data))
			haveLog = true
		} else {
			r.logger.Warn(ctx, "Could not read snapshot log %s: %v", sinkPath, err)
		}
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), "Meeting Transcript", true, titleSize)
	addStyledRun(doc.AddParagraph(""), "Source: "+name, true, headingSize)

	meta := fmt.Sprintf("Generated on %s | Processed by SpeechText.AI", r.now().Format("January 02, 2006 at 03:04 PM"))
	addStyledRun(doc.AddParagraph(""), meta, false, fontSize)
	if haveLog {
		note := "Complete transcript with timestamps: " + filepath.Base(sinkPath)
		addStyledRun(doc.AddParagraph(""), note, false, fontSize)
	}
	doc.AddParagraph("")

	for _, para := range splitParagraphs(body) {
		p := doc.AddParagraph("")
		p.AddText(para).Font(fontName).Size(fontSize).Color("000000")
		doc.AddParagraph("")
	}

	if haveLog {
		addStyledRun(doc.AddParagraph(""), "Detailed Analysis Available", true, headingSize)
		note := fmt.Sprintf("Complete word-level timestamps, speaker identification, and confidence scores are available in the full transcript file: %s", filepath.Base(sinkPath))
		addStyledRun(doc.AddParagraph(""), note, false, fontSize)
	}

	if err := doc.SaveTo(outPath); err != nil {
		return fmt.Errorf("save transcript document: %w", err)
	}

	r.logger.Info(ctx, "Transcript document created successfully")
	return nil
}

// WriteSummary renders the generated meeting summary as a docx document.
// Lines wrapped in ** become section headings, dash lines become bullets.
func (r *implRenderer) WriteSummary(ctx context.Context, summary, name, outPath string) error {
	r.logger.Info(ctx, "Creating summary document: %s", filepath.Base(outPath))

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), "Meeting Summary", true, titleSize)
	addStyledRun(doc.AddParagraph(""), "Meeting: "+name, true, headingSize)

	meta := fmt.Sprintf("Generated on %s | Summarized by Gemini", r.now().Format("January 02, 2006 at 03:04 PM"))
	addStyledRun(doc.AddParagraph(""), meta, false, fontSize)
	doc.AddParagraph("")

	for _, line := range strings.Split(summary, "\n") {
		trimmed := strings.TrimSpace(line)
		switch classifyLine(trimmed) {
		case lineBlank:
			doc.AddParagraph("")
		case lineHeading:
			addStyledRun(doc.AddParagraph(""), headingText(trimmed), true, headingSize)
		case lineBullet:
			addRichText(doc.AddParagraph(""), "• "+strings.TrimSpace(trimmed[2:]))
		default:
			addRichText(doc.AddParagraph(""), trimmed)
		}
	}

	if err := doc.SaveTo(outPath); err != nil {
		return fmt.Errorf("save summary document: %w", err)
	}

	r.logger.Info(ctx, "Summary document created successfully")
	return nil
}

type lineKind int

const (
	lineBody lineKind = iota
	lineBlank
	lineHeading
	lineBullet
)

func classifyLine(trimmed string) lineKind {
	switch {
	case trimmed == "":
		return lineBlank
	case strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**") && len(trimmed) > 4:
		return lineHeading
	case strings.HasPrefix(trimmed, "- "):
		return lineBullet
	default:
		return lineBody
	}
}

// headingText strips the ** wrapper and any whitespace it enclosed.
func headingText(trimmed string) string {
	return strings.TrimSpace(strings.Trim(trimmed, "*"))
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText writes a line honoring inline **bold** spans.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
