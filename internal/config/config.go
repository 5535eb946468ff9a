package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the admin service.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"admin-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8084"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Upstream booking backend the dashboard entities are fetched from.
	BookingAPIURL  string        `env:"BOOKING_API_URL" envDefault:"http://localhost:9000"`
	BookingTimeout time.Duration `env:"BOOKING_TIMEOUT" envDefault:"30s"`

	// Optional file backing the persistent bearer token slot.
	TokenFile string `env:"ADMIN_TOKEN_FILE" envDefault:""`

	// Tabular view defaults.
	PageSize int `env:"PAGE_SIZE" envDefault:"10"`

	// Snapshot refresh workers.
	RefreshInterval    time.Duration `env:"SNAPSHOT_REFRESH_INTERVAL" envDefault:"5m"`
	RefreshWorkerCount int           `env:"REFRESH_WORKER_COUNT" envDefault:"2"`
	RefreshTaskTimeout time.Duration `env:"REFRESH_TASK_TIMEOUT" envDefault:"45s"`
	RefreshPollPeriod  time.Duration `env:"REFRESH_POLL_PERIOD" envDefault:"2s"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if strings.TrimSpace(cfg.BookingAPIURL) == "" {
		return nil, fmt.Errorf("BOOKING_API_URL must not be empty")
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}

	if cfg.RefreshWorkerCount <= 0 {
		cfg.RefreshWorkerCount = 2
	}

	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 5 * time.Minute
	}

	if cfg.RefreshTaskTimeout <= 0 {
		cfg.RefreshTaskTimeout = 45 * time.Second
	}

	if cfg.RefreshPollPeriod <= 0 {
		cfg.RefreshPollPeriod = 2 * time.Second
	}

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
