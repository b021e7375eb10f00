package main

import (
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"

	"github.com/cyboglabs/cybot/pkg/answers"
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

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := gorm.Open("postgres", cfg.Storage.PostgresDSN())
	if err != nil {
		log.Error("api", "failed to connect to database", map[string]interface{}{"error": err})
		os.Exit(1)
	}
	defer db.Close()

	awsSession := session.Must(session.NewSession())
	store := answers.NewStore(s3.New(awsSession), cfg.Storage.S3Bucket, cfg.Storage.AnswersKey, time.Minute)
	service := api.NewService(
		store,
		&contact.GormStore{DB: db},
		svc.NewSNSClient(),
		cfg.Storage.SNSTopicARN,
		log,
	)
	service.AdminToken = cfg.App.AdminToken

	router := api.NewRouter(service, cfg.App.CorsOrigins)
	log.Info("api", "listening", map[string]interface{}{"port": cfg.App.Port})
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Error("api", "server stopped", map[string]interface{}{"error": err})
		os.Exit(1)
	}
}
