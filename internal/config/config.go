package config

import (
	"fmt"
	"time"

	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/config"
)

// Config holds all runtime configuration for the storefront server.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// StateTTL bounds how long idle cart and wishlist state survives in
	// storage. Zero disables expiry.
	StateTTL time.Duration `env:"STATE_TTL" envDefault:"720h"`

	KafkaBrokers  []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	EventsEnabled bool     `env:"EVENTS_ENABLED" envDefault:"false"`

	AdvisorURL     string        `env:"ADVISOR_URL" envDefault:"http://localhost:8090"`
	AdvisorTimeout time.Duration `env:"ADVISOR_TIMEOUT" envDefault:"10s"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

// Load reads config from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	if c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}
	if c.StateTTL < 0 {
		return fmt.Errorf("STATE_TTL must not be negative")
	}
	if c.EventsEnabled && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when events are enabled")
	}
	if c.AdvisorURL == "" {
		return fmt.Errorf("ADVISOR_URL is required")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
