package main

import (
	"log"
	"os"

	"slack_relay/internal/config"
	"slack_relay/internal/handler"
	"slack_relay/internal/logger"

	"go.uber.org/zap"
)

// Local development server running the same router as the Lambda binary.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	router := handler.NewRouter(cfg)
	logger.GetLogger().Info("starting server", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
