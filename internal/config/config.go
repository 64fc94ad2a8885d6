package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name           string   `envconfig:"APP_NAME" default:"cosigner"`
		Port           int      `envconfig:"PORT" default:"8080"`
		AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"cosigner"`
	}

	Redis struct {
		Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
		Password string        `envconfig:"REDIS_PASSWORD" default:""`
		DB       int           `envconfig:"REDIS_DB" default:"0"`
		DraftTTL time.Duration `envconfig:"DRAFT_CACHE_TTL" default:"720h"`
	}

	AMQP struct {
		// URL empty disables payment event intake.
		URL             string        `envconfig:"AMQP_URL"`
		Exchange        string        `envconfig:"AMQP_EXCHANGE" default:"payments"`
		Queue           string        `envconfig:"AMQP_QUEUE" default:"cosigner.payments"`
		HandlerTimeout  time.Duration `envconfig:"AMQP_HANDLER_TIMEOUT" default:"10s"`
		RetryDelay      time.Duration `envconfig:"AMQP_RETRY_DELAY" default:"5s"`
		MaxRedeliveries int           `envconfig:"AMQP_MAX_REDELIVERIES" default:"10"`
	}

	Auth struct {
		Secret string `envconfig:"JWT_SECRET" required:"true"`
	}

	Upload struct {
		BaseURL          string        `envconfig:"UPLOAD_PROVIDER_URL" default:"http://localhost:9000"`
		Token            string        `envconfig:"UPLOAD_PROVIDER_TOKEN"`
		Timeout          time.Duration `envconfig:"UPLOAD_TIMEOUT" default:"60s"`
		IdentityMaxBytes int64         `envconfig:"UPLOAD_IDENTITY_MAX_BYTES" default:"5242880"`
		IncomeMaxBytes   int64         `envconfig:"UPLOAD_INCOME_MAX_BYTES" default:"10485760"`
	}

	Server struct {
		Timeout         time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
