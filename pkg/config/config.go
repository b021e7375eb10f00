package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Widget   WidgetConfig
	Storage  StorageConfig
	Twilio   TwilioConfig
	Airtable AirtableConfig
}

type AppConfig struct {
	Environment string
	Port        string
	CorsOrigins []string
	Language    string
	AdminToken  string
}

// WidgetConfig is everything the assistant widget needs to reach its backend
type WidgetConfig struct {
	BackendURL     string
	RequestTimeout time.Duration
	LogFilePath    string
	FAQPath        string
}

type StorageConfig struct {
	S3Bucket    string
	FAQKey      string
	AnswersKey  string
	SNSTopicARN string
	RDSHost     string
	RDSPort     string
	RDSUsername string
	RDSPassword string
	RDSDBName   string
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string
	OnCall     string
}

type AirtableConfig struct {
	Base       string
	Table      string
	Key        string
	FAQPageURL string
}

// Load reads configuration from the environment, after loading a .env file if present
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not read .env file: %s", err)
	}

	return &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("PORT", "8001"),
			CorsOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
			Language:    getEnv("LANGUAGE", "en"),
			AdminToken:  getEnv("ADMIN_TOKEN", ""),
		},
		Widget: WidgetConfig{
			BackendURL:     strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:8001"), "/"),
			RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 15*time.Second),
			LogFilePath:    getEnv("LOG_FILE_PATH", "cybot-widget.log"),
			FAQPath:        getEnv("FAQ_PATH", ""),
		},
		Storage: StorageConfig{
			S3Bucket:    getEnv("S3_BUCKET", ""),
			FAQKey:      getEnv("FAQ_KEY", "faq.json"),
			AnswersKey:  getEnv("ANSWERS_KEY", "answers.json"),
			SNSTopicARN: getEnv("SNS_TOPIC_ARN", ""),
			RDSHost:     getEnv("RDS_HOST", "localhost"),
			RDSPort:     getEnv("RDS_PORT", "5432"),
			RDSUsername: getEnv("RDS_USERNAME", ""),
			RDSPassword: getEnv("RDS_PASSWORD", ""),
			RDSDBName:   getEnv("RDS_DB_NAME", "cyboglabs"),
		},
		Twilio: TwilioConfig{
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			From:       getEnv("TWILIO_FROM", ""),
			OnCall:     getEnv("TWILIO_ON_CALL", ""),
		},
		Airtable: AirtableConfig{
			Base:       getEnv("AIRTABLE_BASE", ""),
			Table:      getEnv("AIRTABLE_TABLE", ""),
			Key:        getEnv("AIRTABLE_KEY", ""),
			FAQPageURL: getEnv("FAQ_PAGE_URL", "https://cyboglabs.com/faq"),
		},
	}
}

// IsProd reports whether the app runs in production
func (c *Config) IsProd() bool {
	return c.App.Environment == "production"
}

// PostgresDSN is the connection string for the contact submissions database
func (s StorageConfig) PostgresDSN() string {
	return "host=" + s.RDSHost +
		" port=" + s.RDSPort +
		" user=" + s.RDSUsername +
		" dbname=" + s.RDSDBName +
		" password=" + s.RDSPassword
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
