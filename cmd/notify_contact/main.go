package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sfreiberg/gotwilio"

	"github.com/cyboglabs/cybot/pkg/api"
	"github.com/cyboglabs/cybot/pkg/config"
	"github.com/cyboglabs/cybot/pkg/logger"
	"github.com/cyboglabs/cybot/pkg/svc"
)

func main() {
	cfg := config.Load()
	log := logger.NewConsoleLogger(cfg.IsProd())
	defer log.Sync()

	client := gotwilio.NewTwilioClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken)
	alerts := &api.ContactAlerts{
		Notifier: svc.NewTwilioNotifier(client, cfg.Twilio.From, cfg.Twilio.OnCall),
		Logger:   log,
	}
	lambda.Start(alerts.HandleSNSEvent)
}
