package config

import "fmt"

type Config struct {
	SpeechText SpeechTextConfig `yaml:"speechtext"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Paths      PathsConfig      `yaml:"paths"`
	Recordings RecordingsConfig `yaml:"recordings"`
	Logging    LoggingConfig    `yaml:"logging"`
	Watch      WatchConfig      `yaml:"watch"`
}

type SpeechTextConfig struct {
	BaseURL             string `yaml:"base_url"`
	Language            string `yaml:"language"`
	Punctuation         bool   `yaml:"punctuation"`
	Speakers            bool   `yaml:"speakers"`
	Summary             bool   `yaml:"summary"`
	SummarySize         int    `yaml:"summary_size"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
	MaxPolls            int    `yaml:"max_polls"`
}

type GeminiConfig struct {
	Model          string `yaml:"model"`
	PromptTemplate string `yaml:"prompt_template"`
}

type PathsConfig struct {
	Downloads string `yaml:"downloads"`
	Output    string `yaml:"output"`
}

type RecordingsConfig struct {
	Extensions []string `yaml:"extensions"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WatchConfig struct {
	Enabled       bool `yaml:"enabled"`
	MaxConcurrent int  `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Paths.Downloads == "" {
		return fmt.Errorf("paths.downloads is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.SpeechText.BaseURL == "" {
		c.SpeechText.BaseURL = "https://api.speechtext.ai"
	}
	if c.SpeechText.Language == "" {
		c.SpeechText.Language = "en-US"
	}
	if c.SpeechText.SummarySize == 0 {
		c.SpeechText.SummarySize = 15
	}
	if c.SpeechText.PollIntervalSeconds == 0 {
		c.SpeechText.PollIntervalSeconds = 15
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.PromptTemplate == "" {
		c.Gemini.PromptTemplate = "summary_prompt_template.txt"
	}
	if len(c.Recordings.Extensions) == 0 {
		c.Recordings.Extensions = []string{".webm"}
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 2
	}

	return nil
}
