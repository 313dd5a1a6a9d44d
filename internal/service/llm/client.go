package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"slack_relay/internal/logger"
	"slack_relay/internal/model"

	"go.uber.org/zap"
)

const userAgent = "SlackBot/1.0"

// ErrMalformedReply reports a 2xx response whose body does not carry
// generated text at reply[0].contents[0].content.
var ErrMalformedReply = errors.New("malformed LLM reply")

// APIError reports a non-2xx status from the LLM endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("LLM API returned status %d: %s", e.StatusCode, e.Body)
}

// Client calls the LLM chat endpoint.
type Client struct {
	apiURL        string
	applicationID int
	httpClient    *http.Client
}

// NewClient returns a client for the given endpoint. timeout bounds each
// request in addition to the caller's context.
func NewClient(apiURL string, applicationID int, timeout time.Duration) *Client {
	return &Client{
		apiURL:        apiURL,
		applicationID: applicationID,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

// Generate sends message as a single user turn and returns the generated text.
func (c *Client) Generate(ctx context.Context, message string) (string, error) {
	reqBody := model.LLMRequest{
		ApplicationID: c.applicationID,
		Stream:        false,
		Messages: []model.LLMMessage{
			{
				Role: "user",
				Contents: []model.LLMContent{
					{Type: "text", Content: message},
				},
			},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode LLM request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build LLM request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	// The endpoint expects the header present but unauthenticated.
	req.Header.Set("Authorization", "")

	logger.GetLogger().Debug("sending message to LLM",
		zap.Int("application_id", c.applicationID),
		zap.Int("message_length", len(message)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call LLM API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read LLM response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var llmResp model.LLMResponse
	if err := json.Unmarshal(body, &llmResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(llmResp.Reply) == 0 || len(llmResp.Reply[0].Contents) == 0 {
		return "", fmt.Errorf("%w: no reply contents", ErrMalformedReply)
	}
	text := llmResp.Reply[0].Contents[0].Content
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty reply text", ErrMalformedReply)
	}

	logger.GetLogger().Debug("received LLM reply", zap.Int("reply_length", len(text)))
	return text, nil
}
