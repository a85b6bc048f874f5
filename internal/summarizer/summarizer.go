package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Summarize sends the transcript to Gemini and returns the structured
// summary text.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	template, err := s.loadTemplate(ctx)
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "Generating summary with Gemini...")

	summary, err := s.callGemini(ctx, renderPrompt(template, transcript))
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "Summary generated successfully")
	return summary, nil
}

// callGemini sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) callGemini(ctx context.Context, prompt string) (string, error) {
	attempts := len(s.apiKeys)
	if attempts == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}

	var lastErr error

	for range attempts {
		idx, key := s.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) activeKey() (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey, s.apiKeys[s.currentKey]
}

func (s *implSummarizer) rotateKey() {
	s.mu.Lock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	s.mu.Unlock()
}
