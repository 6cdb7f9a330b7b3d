package config

import (
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Fetcher   FetcherConfig   `json:"fetcher"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Outbox    OutboxConfig    `json:"outbox"`
	Logging   LoggingConfig   `json:"logging"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9300"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	Host              string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port              int           `json:"port" env:"DB_PORT" default:"5432"`
	User              string        `json:"user" env:"DB_USER" default:"flock"`
	Password          string        `json:"-" env:"DB_PASSWORD"`
	Name              string        `json:"name" env:"DB_NAME" default:"flock"`
	SSLMode           string        `json:"ssl_mode" env:"DB_SSL_MODE" default:"disable"`
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type SchedulerConfig struct {
	Enabled       bool          `json:"enabled" env:"SCHEDULER_ENABLED" default:"true"`
	SweepInterval time.Duration `json:"sweep_interval" env:"SCHEDULER_SWEEP_INTERVAL" default:"1m"`
	BatchSize     int           `json:"batch_size" env:"SCHEDULER_BATCH_SIZE" default:"10"`
	WorkerLimit   int           `json:"worker_limit" env:"SCHEDULER_WORKER_LIMIT" default:"4"`
}

type FetcherConfig struct {
	Timeout           time.Duration `json:"timeout" env:"FETCHER_TIMEOUT" default:"10s"`
	FirstFetchLimit   int           `json:"first_fetch_limit" env:"FETCHER_FIRST_FETCH_LIMIT" default:"20"`
	RefreshFetchLimit int           `json:"refresh_fetch_limit" env:"FETCHER_REFRESH_FETCH_LIMIT" default:"50"`
	UserAgent         string        `json:"user_agent" env:"FETCHER_USER_AGENT" default:"flock-feed-fetcher/1.0"`
}

type RateLimitConfig struct {
	HostInterval time.Duration `json:"host_interval" env:"RATE_LIMIT_HOST_INTERVAL" default:"5s"`
}

type OutboxConfig struct {
	WorkerInterval time.Duration `json:"worker_interval" env:"OUTBOX_WORKER_INTERVAL" default:"10s"`
	BatchSize      int           `json:"batch_size" env:"OUTBOX_BATCH_SIZE" default:"10"`
	PruneAfter     time.Duration `json:"prune_after" env:"OUTBOX_PRUNE_AFTER" default:"168h"`
	// WebhookURL is where drained events get POSTed. Empty means log-only
	// delivery.
	WebhookURL     string        `json:"webhook_url" env:"OUTBOX_WEBHOOK_URL"`
	WebhookTimeout time.Duration `json:"webhook_timeout" env:"OUTBOX_WEBHOOK_TIMEOUT" default:"5s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values
func NewConfig() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load is an alias for NewConfig for backward compatibility
func Load() (*Config, error) {
	return NewConfig()
}
