package main

import (
	"context"
	"log"

	"slack_relay/internal/config"
	"slack_relay/internal/handler"
	"slack_relay/internal/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
)

var ginLambda *ginadapter.GinLambda

func initApp() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}

	ginLambda = ginadapter.New(handler.NewRouter(cfg))
	return nil
}

func handleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	if err := initApp(); err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer logger.Sync()
	lambda.Start(handleRequest)
}
