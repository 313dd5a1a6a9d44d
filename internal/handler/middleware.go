package handler

import (
	"bytes"
	"io"
	"net/http"

	"slack_relay/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// HandleSlackRetry is a middleware that handles Slack retry requests. Slack
// resends an event when the first delivery misses its 3s deadline; the relay
// already ran, so a retry only needs an acknowledgement.
func HandleSlackRetry() gin.HandlerFunc {
	return func(c *gin.Context) {
		retryNum := c.GetHeader("X-Slack-Retry-Num")
		retryReason := c.GetHeader("X-Slack-Retry-Reason")

		if retryNum != "" {
			logger.GetLogger().Info("slack retry request",
				zap.String("retry_num", retryNum),
				zap.String("retry_reason", retryReason))
			c.String(http.StatusOK, "ok (retry skipped)")
			c.Abort()
			return
		}
		c.Next()
	}
}

// VerifySlackSignature is a middleware that checks X-Slack-Signature over the
// raw request body. An empty signingSecret disables verification.
func VerifySlackSignature(signingSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if signingSecret == "" {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			logger.GetLogger().Error("failed to read request body", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
			c.Abort()
			return
		}
		// reattach request body for later handlers
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		// NewSecretsVerifier rejects missing or stale timestamp headers
		sv, err := slack.NewSecretsVerifier(c.Request.Header, signingSecret)
		if err != nil {
			logger.GetLogger().Warn("rejected request with invalid signature headers", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid request signature"})
			c.Abort()
			return
		}
		if _, err := sv.Write(body); err != nil {
			logger.GetLogger().Error("failed to hash request body", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "signature verification failed"})
			c.Abort()
			return
		}
		if err := sv.Ensure(); err != nil {
			logger.GetLogger().Warn("rejected request with bad signature", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid request signature"})
			c.Abort()
			return
		}
		c.Next()
	}
}
