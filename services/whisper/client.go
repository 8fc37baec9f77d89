package whisper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a whisper ASR web service over HTTP. The speech model is
// loaded once inside that service and shared across requests, so this side
// only holds a reusable HTTP handle.
type Client struct {
	baseURL string
	http    *http.Client

	// DefaultLanguage is used when the caller does not pin one. Empty
	// means the service auto-detects.
	DefaultLanguage string
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("WHISPER_SERVICE_URL is not set")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// Transcribe sends the audio bytes to the ASR service and returns the
// recognized text with surrounding whitespace trimmed.
func (c *Client) Transcribe(ctx context.Context, filename string, audio []byte, language string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	file, err := writer.CreateFormFile("audio_file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}
	if _, err := file.Write(audio); err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}

	if language == "" {
		language = c.DefaultLanguage
	}
	params := url.Values{"task": {"transcribe"}, "output": {"txt"}}
	if language != "" {
		params.Set("language", language)
	}
	endpoint := fmt.Sprintf("%s/asr?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read transcription response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription service returned status %d: %s", resp.StatusCode, string(raw))
	}

	return strings.TrimSpace(string(raw)), nil
}
