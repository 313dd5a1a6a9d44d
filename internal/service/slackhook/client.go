package slackhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"slack_relay/internal/logger"
	"slack_relay/internal/model"

	"go.uber.org/zap"
)

const userAgent = "SlackBot/1.0"

// DeliveryError reports a non-2xx status from the incoming webhook. The
// generated text existed; Slack did not acknowledge it.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("Slack webhook returned status %d: %s", e.StatusCode, e.Body)
}

// Sender posts messages to a Slack incoming webhook.
type Sender struct {
	webhookURL string
	httpClient *http.Client
}

// NewSender returns a sender for the given incoming-webhook URL.
func NewSender(webhookURL string, timeout time.Duration) *Sender {
	return &Sender{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Send posts text to the webhook. A nil return means Slack acknowledged
// the message with a 2xx status.
func (s *Sender) Send(ctx context.Context, text string) error {
	payload, err := json.Marshal(model.SlackResponse{Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	logger.GetLogger().Debug("posting reply to Slack webhook", zap.Int("text_length", len(text)))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Slack webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return &DeliveryError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return nil
}
