package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"

	"github.com/cyboglabs/cybot/pkg/api"
	"github.com/cyboglabs/cybot/pkg/config"
	"github.com/cyboglabs/cybot/pkg/contact"
	"github.com/cyboglabs/cybot/pkg/logger"
	"github.com/cyboglabs/cybot/pkg/svc"
)

func main() {
	cfg := config.Load()
	log := logger.NewConsoleLogger(cfg.IsProd())
	defer log.Sync()

	handler := func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		db, err := gorm.Open("postgres", cfg.Storage.PostgresDSN())
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}
		defer db.Close()

		service := api.NewService(
			nil,
			&contact.GormStore{DB: db},
			svc.NewSNSClient(),
			cfg.Storage.SNSTopicARN,
			log,
		)
		service.AdminToken = cfg.App.AdminToken
		if request.HTTPMethod == http.MethodGet {
			return service.HandleContactsRequest(ctx, request)
		}
		return service.HandleContactRequest(ctx, request)
	}
	lambda.Start(handler)
}
