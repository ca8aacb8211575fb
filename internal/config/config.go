package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	DocStore DocStoreConfig
	RabbitMQ RabbitMQConfig
	Auth     AuthConfig
	Webhook  WebhookConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
	AutoMigrate  bool
}

type DocStoreConfig struct {
	Driver   string
	MongoURI string
	Database string
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type WebhookConfig struct {
	RazorpaySecret string
}

const (
	DocStoreMongo  = "mongo"
	DocStoreMemory = "memory"
)

// Load reads the environment, preceded by an optional .env file in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	maxOpen, err := getEnvInt("DB_MAX_OPEN_CONNS", 25)
	if err != nil {
		return nil, err
	}
	maxIdle, err := getEnvInt("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return nil, err
	}
	ttlHours, err := getEnvInt("JWT_TTL_HOURS", 24)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Port:     getEnv("PORT", "8080"),
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			URL:          getEnv("POSTGRES_URL", ""),
			MaxOpenConns: maxOpen,
			MaxIdleConns: maxIdle,
			MaxLifetime:  time.Hour,
			AutoMigrate:  getEnvBool("DB_AUTO_MIGRATE", false),
		},
		DocStore: DocStoreConfig{
			Driver:   strings.ToLower(getEnv("DOCSTORE_DRIVER", DocStoreMongo)),
			MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "apextip"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      getEnv("RABBITMQ_URL", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", "apextip.events"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  time.Duration(ttlHours) * time.Hour,
		},
		Webhook: WebhookConfig{
			RazorpaySecret: getEnv("RAZORPAY_WEBHOOK_SECRET", ""),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("POSTGRES_URL is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.DocStore.Driver {
	case DocStoreMongo, DocStoreMemory:
	default:
		return fmt.Errorf("DOCSTORE_DRIVER must be %q or %q, got %q", DocStoreMongo, DocStoreMemory, c.DocStore.Driver)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return v
}
