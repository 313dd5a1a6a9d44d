package handler

import (
	"context"

	"slack_relay/internal/config"
	"slack_relay/internal/service/llm"
	"slack_relay/internal/service/slackhook"
)

// TextGenerator produces a reply for an extracted mention message.
type TextGenerator interface {
	Generate(ctx context.Context, message string) (string, error)
}

// Notifier delivers a generated reply to Slack.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// SlackHandler dispatches Slack event callbacks and runs the mention relay.
type SlackHandler struct {
	generator TextGenerator
	notifier  Notifier
	policy    config.EventPolicy
}

// NewSlackHandler wires the relay against the configured LLM endpoint and
// Slack incoming webhook.
func NewSlackHandler(cfg *config.Config) *SlackHandler {
	return &SlackHandler{
		generator: llm.NewClient(cfg.LLMAPIURL, cfg.LLMApplicationID, cfg.RequestTimeout),
		notifier:  slackhook.NewSender(cfg.SlackWebhookURL, cfg.RequestTimeout),
		policy:    cfg.UnmatchedEventPolicy,
	}
}
