// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_PORT=8080, APP_LOG_LEVEL=debug, APP_CODEC_SCALAR_VALUES=true
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Codec    CodecConfig
	Metrics  MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout bounds reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout bounds writing the response (default: 30s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout bounds graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds PostgreSQL connection settings for the provider registry.
type DatabaseConfig struct {
	// Enabled selects PostgreSQL; when false providers are kept in memory.
	Enabled bool `envconfig:"DB_ENABLED" default:"true"`

	// AutoMigrate applies embedded migrations on startup (default: true)
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`

	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"socialid"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// MaxOpenConns is the maximum number of open connections (default: 10)
	MaxOpenConns int `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`

	// MaxIdleConns is the minimum number of pooled connections (default: 2)
	MaxIdleConns int `envconfig:"DB_MAX_IDLE_CONNS" default:"2"`

	// ConnMaxLifetime is the maximum lifetime of a connection (default: 5m)
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`

	// ConnectTimeout bounds the startup connection retries (default: 30s)
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"30s"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: json, text, plain (default: json)
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// CodecConfig controls the identifier encoder.
type CodecConfig struct {
	// ScalarValues encodes Unicode scalar values instead of UTF-16 code
	// units. Changes the wire form of characters outside the BMP.
	ScalarValues bool `envconfig:"CODEC_SCALAR_VALUES" default:"false"`

	// MaxBatchSize bounds the ids accepted by one grouping request.
	MaxBatchSize int `envconfig:"CODEC_MAX_BATCH" default:"1000"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	// Sections are processed one by one so variables stay flat
	// (APP_PORT rather than APP_SERVER_PORT).
	sections := []struct {
		name   string
		target any
	}{
		{"server", &cfg.Server},
		{"database", &cfg.Database},
		{"log", &cfg.Log},
		{"codec", &cfg.Codec},
		{"metrics", &cfg.Metrics},
	}
	for _, s := range sections {
		if err := envconfig.Process("APP", s.target); err != nil {
			return nil, fmt.Errorf("failed to load %s config: %w", s.name, err)
		}
	}

	if cfg.Codec.MaxBatchSize <= 0 {
		return nil, fmt.Errorf("APP_CODEC_MAX_BATCH must be positive, got %d", cfg.Codec.MaxBatchSize)
	}

	return &cfg, nil
}
