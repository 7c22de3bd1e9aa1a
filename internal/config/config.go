package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `env:"KZ_HTTP_ADDR" envDefault:":8080"`
	DataPath        string        `env:"KZ_DATA_PATH"`
	AssetsPath      string        `env:"KZ_ASSETS_PATH"`
	DefaultLang     string        `env:"KZ_DEFAULT_LANG" envDefault:"ja"`
	LogLevel        string        `env:"KZ_LOG_LEVEL" envDefault:"info"`
	RateLimit       float64       `env:"KZ_RATE_LIMIT" envDefault:"20"`
	RateBurst       int           `env:"KZ_RATE_BURST" envDefault:"40"`
	SentryDSN       string        `env:"KZ_SENTRY_DSN"`
	Environment     string        `env:"KZ_ENVIRONMENT" envDefault:"development"`
	OTelEndpoint    string        `env:"KZ_OTEL_ENDPOINT"`
	ShutdownTimeout time.Duration `env:"KZ_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	SiteURL         string        `env:"KZ_SITE_URL" envDefault:"https://kz.dev"`
}

// Load reads an optional dotenv file and parses the environment.
// A missing envFile is not an error; variables already set take precedence.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the environment parser cannot.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ServerAddr) == "" {
		return errors.New("KZ_HTTP_ADDR must not be empty")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("KZ_RATE_LIMIT must not be negative: %v", c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		return fmt.Errorf("KZ_RATE_BURST must be positive: %d", c.RateBurst)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("KZ_SHUTDOWN_TIMEOUT must be positive: %s", c.ShutdownTimeout)
	}
	if c.AssetsPath != "" {
		info, err := os.Stat(c.AssetsPath)
		if err != nil {
			return fmt.Errorf("KZ_ASSETS_PATH: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("KZ_ASSETS_PATH: %s is not a directory", c.AssetsPath)
		}
	}
	return nil
}

// Debug reports whether debug logging was requested.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

// Production reports whether the server runs in the production environment.
func (c *Config) Production() bool {
	return strings.EqualFold(c.Environment, "production")
}
