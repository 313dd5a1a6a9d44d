package handler

import (
	"slack_relay/internal/config"
	"slack_relay/internal/logger"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine shared by the Lambda adapter and the local
// server. Signature verification runs before the retry check so retries are
// authenticated like any other delivery.
func NewRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLogMiddleware())

	slackHandler := NewSlackHandler(cfg)

	router.GET("/hello", HandleHello)
	router.POST("/challenge",
		VerifySlackSignature(cfg.SlackSigningSecret),
		HandleSlackRetry(),
		slackHandler.HandleRequest)

	return router
}
