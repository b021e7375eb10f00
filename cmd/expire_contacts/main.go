package main

import (
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"

	"github.com/cyboglabs/cybot/pkg/config"
	"github.com/cyboglabs/cybot/pkg/contact"
	"github.com/cyboglabs/cybot/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.NewConsoleLogger(cfg.IsProd())
	defer log.Sync()

	handler := func(request events.CloudWatchEvent) error {
		db, err := gorm.Open("postgres", cfg.Storage.PostgresDSN())
		if err != nil {
			return err
		}
		defer db.Close()

		count, err := contact.ExpireStaleSubmissions(db, time.Now())
		if err != nil {
			return err
		}
		log.Info("expire_contacts", "expired stale submissions", map[string]interface{}{"count": count})
		return nil
	}
	lambda.Start(handler)
}
