package handler

import (
	"encoding/json"
	"net/http"

	"slack_relay/internal/config"
	"slack_relay/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"
)

// HandleRequest classifies an inbound Slack payload and routes it to the
// challenge reply, the app-mention relay, or the unmatched-event policy.
func (h *SlackHandler) HandleRequest(c *gin.Context) {
	log := logger.GetLogger()

	// Read request body
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		log.Error("empty request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty request body"})
		return
	}

	// Parse the Slack event
	eventsAPIEvent, err := slackevents.ParseEvent(
		json.RawMessage(body),
		slackevents.OptionNoVerifyToken(),
	)
	if err != nil {
		log.Error("failed to parse slack event", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse slack event"})
		return
	}

	switch eventsAPIEvent.Type {
	case slackevents.URLVerification:
		// Slack sends this once when the endpoint URL is registered
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			log.Error("failed to unmarshal challenge", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse challenge"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"challenge": challenge.Challenge})

	case slackevents.CallbackEvent:
		innerEvent := eventsAPIEvent.InnerEvent
		switch event := innerEvent.Data.(type) {
		case *slackevents.AppMentionEvent:
			h.handleAppMentionEvent(c, body, event)
		default:
			log.Warn("unsupported inner event type", zap.String("event_type", innerEvent.Type))
			h.handleUnmatchedEvent(c)
		}

	default:
		log.Warn("unsupported event type", zap.String("event_type", eventsAPIEvent.Type))
		h.handleUnmatchedEvent(c)
	}
}

func (h *SlackHandler) handleUnmatchedEvent(c *gin.Context) {
	if h.policy == config.EventPolicyIgnore {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Unrecognized event type"})
}
