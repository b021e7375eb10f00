package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/cyboglabs/cybot/pkg/config"
	"github.com/cyboglabs/cybot/pkg/faq"
	"github.com/cyboglabs/cybot/pkg/logger"
	"github.com/cyboglabs/cybot/pkg/scrapers"
)

func main() {
	cfg := config.Load()
	log := logger.NewConsoleLogger(cfg.IsProd())
	defer log.Sync()

	client := &http.Client{Timeout: 30 * time.Second}
	handler := func(request events.CloudWatchEvent) error {
		response, err := client.Get(cfg.Airtable.FAQPageURL)
		if err != nil {
			return err
		}
		defer response.Body.Close()
		if response.StatusCode != http.StatusOK {
			return fmt.Errorf("FAQ page returned status %d", response.StatusCode)
		}

		entries, err := scrapers.ScrapeFAQ(response.Body)
		if err != nil {
			return err
		}
		// An empty page usually means the markup changed, so keep the last good dataset
		if len(entries) == 0 {
			log.Warn("scrape_faq", "no FAQ entries found", map[string]interface{}{"url": cfg.Airtable.FAQPageURL})
			return nil
		}
		log.Info("scrape_faq", "scraped FAQ", map[string]interface{}{"count": len(entries)})
		return faq.PublishDataset(
			s3.New(session.Must(session.NewSession())),
			cfg.Storage.S3Bucket,
			cfg.Storage.FAQKey,
			entries,
		)
	}
	lambda.Start(handler)
}
