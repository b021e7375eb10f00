package main

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/cyboglabs/cybot/pkg/answers"
	"github.com/cyboglabs/cybot/pkg/config"
	"github.com/cyboglabs/cybot/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.NewConsoleLogger(cfg.IsProd())
	defer log.Sync()

	handler := func(request events.CloudWatchEvent) error {
		records, err := answers.LoadAirtableAnswers(cfg.Airtable.Base, cfg.Airtable.Table, cfg.Airtable.Key)
		if err != nil {
			return err
		}
		log.Info("load_answers", "loaded knowledge base", map[string]interface{}{"count": len(records)})
		return answers.PublishAnswers(
			s3.New(session.Must(session.NewSession())),
			cfg.Storage.S3Bucket,
			cfg.Storage.AnswersKey,
			records,
		)
	}
	lambda.Start(handler)
}
