package main

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/cyboglabs/cybot/pkg/answers"
	"github.com/cyboglabs/cybot/pkg/api"
	"github.com/cyboglabs/cybot/pkg/config"
	"github.com/cyboglabs/cybot/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.NewConsoleLogger(cfg.IsProd())
	defer log.Sync()

	// Warm Lambda containers reuse the cached knowledge base between invocations
	store := answers.NewStore(
		s3.New(session.Must(session.NewSession())),
		cfg.Storage.S3Bucket,
		cfg.Storage.AnswersKey,
		5*time.Minute,
	)
	service := api.NewService(store, nil, nil, cfg.Storage.SNSTopicARN, log)
	handler := func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		if request.HTTPMethod == http.MethodGet {
			return service.HandleAnswersRequest(ctx, request)
		}
		return service.HandleChatRequest(ctx, request)
	}
	lambda.Start(handler)
}
