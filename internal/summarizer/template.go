package summarizer

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// transcriptPlaceholder marks where the transcript goes in a prompt template.
const transcriptPlaceholder = "{transcript}"

const defaultPromptTemplate = `Please create a professional IT meeting summary from this transcript. Format it with:

**EXECUTIVE SUMMARY** (2-3 sentences highlighting the main purpose and outcomes)

**KEY DECISIONS MADE**
- List all decisions reached during the meeting
- Include rationale where mentioned

**ACTION ITEMS**
- Item description (Owner: Name, Due: Date if mentioned)
- Be specific about who is responsible

**TECHNICAL DISCUSSION POINTS**
- Main technical topics covered
- Any architectural or implementation details discussed

**BLOCKERS & RISKS**
- Issues that need resolution
- Potential risks identified

**NEXT STEPS**
- Immediate next steps
- Follow-up meetings needed

Make it concise, scannable, and suitable for stakeholders. Focus on actionable information.

TRANSCRIPT:
{transcript}`

// loadTemplate reads the prompt template from disk, creating the default one
// on first run so operators have a file to edit.
func (s *implSummarizer) loadTemplate(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.template != "" {
		return s.template, nil
	}

	data, err := os.ReadFile(s.templatePath)
	switch {
	case err == nil:
		s.template = string(data)
	case os.IsNotExist(err):
		if werr := os.WriteFile(s.templatePath, []byte(defaultPromptTemplate), 0644); werr != nil {
			return "", fmt.Errorf("write default prompt template: %w", werr)
		}
		s.logger.Info(ctx, "Created default prompt template: %s", s.templatePath)
		s.template = defaultPromptTemplate
	default:
		return "", fmt.Errorf("read prompt template: %w", err)
	}

	if !strings.Contains(s.template, transcriptPlaceholder) {
		return "", fmt.Errorf("prompt template %s has no %s placeholder", s.templatePath, transcriptPlaceholder)
	}

	return s.template, nil
}

func renderPrompt(template, transcript string) string {
	return strings.ReplaceAll(template, transcriptPlaceholder, transcript)
}
