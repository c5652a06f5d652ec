// Package openai is a minimal chat-completions client. One best-effort call
// per analysis; no retries, no explicit timeout beyond the HTTP client's
// defaults.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	defaultBaseURL = "https://api.openai.com/v1/chat/completions"

	systemPrompt = "You are an AI assistant specializing in payment transaction analysis."

	// noInsights stands in for a malformed or empty provider response.
	noInsights = "No insights generated."

	// PlaceholderAPIKey ships in .env templates and is treated the same as
	// no key at all.
	PlaceholderAPIKey = "sk-REPLACE_ME"
)

// ErrNotConfigured means no usable API key is present. Callers must not have
// performed any network I/O when they see it.
var ErrNotConfigured = errors.New("OpenAI API key is missing or not set")

// UpstreamError reports a non-success HTTP status from the completion API.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("OpenAI API call failed with status: %d", e.StatusCode)
}

type Client struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
	client    *http.Client
}

func NewClient(apiKey string, model string, maxTokens int) *Client {
	return &Client{
		apiKey:    apiKey,
		baseURL:   defaultBaseURL,
		model:     model,
		maxTokens: maxTokens,
		client:    &http.Client{},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Configured reports whether a usable API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.apiKey != PlaceholderAPIKey
}

// Complete sends prompt as the user turn of a chat completion and returns the
// first choice's text. A malformed or empty provider response degrades to a
// placeholder string rather than an error.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens: c.maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &UpstreamError{StatusCode: resp.StatusCode}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return noInsights, nil
	}
	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return noInsights, nil
	}
	return chatResp.Choices[0].Message.Content, nil
}
