package handler

import (
	"encoding/json"
	"net/http"

	"slack_relay/internal/logger"
	"slack_relay/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"
)

// handleAppMentionEvent runs the relay for one mention: extract the message,
// generate a reply, deliver it to the webhook. Each stage failure maps to a
// 500 with a body naming the stage, so callers can tell a dead LLM from a
// reply that was generated but never reached Slack.
func (h *SlackHandler) handleAppMentionEvent(c *gin.Context, body []byte, ev *slackevents.AppMentionEvent) {
	log := logger.GetLogger()

	// Ignore mentions authored by bots to prevent reply loops
	if ev.BotID != "" {
		log.Info("ignoring bot-authored mention", zap.String("bot_id", ev.BotID))
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	// The parsed mention event drops the Block Kit payload, so the mention
	// text has to come from the raw body.
	var envelope model.SlackEvent
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Error("failed to unmarshal event envelope", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse slack event"})
		return
	}

	message, err := mentionText(envelope.Event.Blocks)
	if err != nil {
		log.Error("failed to extract mention text",
			zap.Error(err),
			zap.String("channel", ev.Channel),
			zap.String("user", ev.User))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to extract mention text"})
		return
	}

	ctx := c.Request.Context()

	reply, err := h.generator.Generate(ctx, message)
	if err != nil {
		log.Error("failed to generate reply", zap.Error(err), zap.String("channel", ev.Channel))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate reply"})
		return
	}

	if err := h.notifier.Send(ctx, reply); err != nil {
		log.Error("reply generated but delivery to Slack failed",
			zap.Error(err),
			zap.String("channel", ev.Channel))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reply generated but delivery to Slack failed"})
		return
	}

	log.Info("app mention processed",
		zap.String("channel", ev.Channel),
		zap.String("user", ev.User))
	c.JSON(http.StatusOK, gin.H{"message": "App mention processed"})
}
