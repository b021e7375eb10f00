package main

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"

	"github.com/cyboglabs/cybot/pkg/config"
	"github.com/cyboglabs/cybot/pkg/contact"
)

func main() {
	cfg := config.Load()

	handler := func(request events.CloudWatchEvent) error {
		db, err := gorm.Open("postgres", cfg.Storage.PostgresDSN())
		if err != nil {
			return err
		}
		defer db.Close()

		return db.AutoMigrate(&contact.Submission{}).Error
	}
	lambda.Start(handler)
}
