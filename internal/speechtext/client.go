package speechtext

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Submit uploads a recording to the /recognize endpoint and returns the job
// identifier the service assigns to it. The file is sent as a raw octet
// stream; its format is derived from the file extension.
func (c *implClient) Submit(ctx context.Context, filePath string) (string, error) {
	c.logger.Info(ctx, "Starting transcription for: %s", filepath.Base(filePath))

	body, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read recording: %w", err)
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), "."))

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("language", c.cfg.Language)
	params.Set("punctuation", strconv.FormatBool(c.cfg.Punctuation))
	params.Set("format", format)
	params.Set("speakers", strconv.FormatBool(c.cfg.Speakers))
	params.Set("summary", strconv.FormatBool(c.cfg.Summary))
	params.Set("summary_size", strconv.Itoa(c.cfg.SummarySize))

	endpoint := c.cfg.BaseURL + "/recognize?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	c.logger.Info(ctx, "Uploading file to SpeechText.AI (%d bytes)...", len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UploadError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var result submitResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if result.ID == "" {
		return "", fmt.Errorf("upload response missing job id: %s", respBody)
	}

	c.logger.Info(ctx, "Upload successful. Task ID: %s", result.ID)
	return result.ID, nil
}

// Results queries the /results endpoint for the current state of a job.
// Transport and decoding failures propagate to the caller unmodified; the
// tracker decides what the response means.
func (c *implClient) Results(ctx context.Context, jobID string) (*StatusResponse, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("task", jobID)

	endpoint := c.cfg.BaseURL + "/results?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build results request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("results request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read results response: %w", err)
	}

	status, err := DecodeStatusResponse(body)
	if err != nil {
		return nil, fmt.Errorf("decode results response: %w", err)
	}

	return status, nil
}
