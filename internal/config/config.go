// Package config handles configuration management with validation
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration structure
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	System      SystemConfig      `yaml:"system"`
	Broker      BrokerConfig      `yaml:"broker"`
	Feed        FeedConfig        `yaml:"feed"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
}

// ServerConfig contains listener settings
type ServerConfig struct {
	GRPCPort          int `yaml:"grpc_port"`
	ObservabilityPort int `yaml:"observability_port"` // /health, /status, /metrics, /ws
}

// SystemConfig contains system settings
type SystemConfig struct {
	LogLevel string `yaml:"log_level" validate:"required,oneof=DEBUG INFO WARN ERROR FATAL"`
}

// BrokerConfig contains matching-engine tuning
type BrokerConfig struct {
	// DeliveryQueueDepth is the per-consumer buffered channel between the
	// allocator and the stream sender.
	DeliveryQueueDepth int `yaml:"delivery_queue_depth" validate:"min=1,max=4096"`
	// SignalSendTimeout bounds the push of a ProductionRequest toward a
	// possibly-dead offer stream, in milliseconds.
	SignalSendTimeoutMS int `yaml:"signal_send_timeout_ms" validate:"min=1,max=60000"`
}

// FeedConfig contains the websocket event feed settings
type FeedConfig struct {
	Enabled        bool     `yaml:"enabled"`
	MaxConnections int      `yaml:"max_connections" validate:"min=1,max=10000"`
	RateLimit      float64  `yaml:"rate_limit"` // upgrade attempts per second per IP
	RateBurst      int      `yaml:"rate_burst"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// TelemetryConfig contains telemetry settings
type TelemetryConfig struct {
	EnableMetrics bool `yaml:"enable_metrics"`
}

// ConcurrencyConfig contains worker pool settings
type ConcurrencyConfig struct {
	CoordinatorPoolSize   int `yaml:"coordinator_pool_size" validate:"min=1,max=100"`
	CoordinatorPoolBuffer int `yaml:"coordinator_pool_buffer" validate:"min=1,max=10000"`
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s' (value: %v): %s", e.Field, e.Value, e.Message)
}

// DefaultConfig returns a configuration with sensible defaults applied
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCPort:          50051,
			ObservabilityPort: 9090,
		},
		System: SystemConfig{
			LogLevel: "INFO",
		},
		Broker: BrokerConfig{
			DeliveryQueueDepth:  256,
			SignalSendTimeoutMS: 1000,
		},
		Feed: FeedConfig{
			Enabled:        true,
			MaxConnections: 256,
			RateLimit:      5,
			RateBurst:      10,
		},
		Telemetry: TelemetryConfig{
			EnableMetrics: true,
		},
		Concurrency: ConcurrencyConfig{
			CoordinatorPoolSize:   8,
			CoordinatorPoolBuffer: 1024,
		},
	}
}

// LoadConfig loads configuration from a YAML file with environment variable expansion
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := expandEnvVars(string(data))

	config := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expandedData), config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate performs comprehensive validation of the configuration
func (c *Config) Validate() error {
	var errors []string

	if err := c.validateServerConfig(); err != nil {
		errors = append(errors, err.Error())
	}

	if err := c.validateSystemConfig(); err != nil {
		errors = append(errors, err.Error())
	}

	if err := c.validateBrokerConfig(); err != nil {
		errors = append(errors, err.Error())
	}

	if err := c.validateFeedConfig(); err != nil {
		errors = append(errors, err.Error())
	}

	if err := c.validateConcurrencyConfig(); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.GRPCPort <= 0 || c.Server.GRPCPort > 65535 {
		return ValidationError{
			Field:   "server.grpc_port",
			Value:   c.Server.GRPCPort,
			Message: "must be a valid TCP port",
		}
	}
	if c.Server.ObservabilityPort <= 0 || c.Server.ObservabilityPort > 65535 {
		return ValidationError{
			Field:   "server.observability_port",
			Value:   c.Server.ObservabilityPort,
			Message: "must be a valid TCP port",
		}
	}
	if c.Server.ObservabilityPort == c.Server.GRPCPort {
		return ValidationError{
			Field:   "server.observability_port",
			Value:   c.Server.ObservabilityPort,
			Message: "must differ from server.grpc_port",
		}
	}
	return nil
}

func (c *Config) validateSystemConfig() error {
	validLevels := []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}
	if !contains(validLevels, strings.ToUpper(c.System.LogLevel)) {
		return ValidationError{
			Field:   "system.log_level",
			Value:   c.System.LogLevel,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLevels, ", ")),
		}
	}
	return nil
}

func (c *Config) validateBrokerConfig() error {
	if c.Broker.DeliveryQueueDepth < 1 || c.Broker.DeliveryQueueDepth > 4096 {
		return ValidationError{
			Field:   "broker.delivery_queue_depth",
			Value:   c.Broker.DeliveryQueueDepth,
			Message: "must be between 1 and 4096",
		}
	}
	if c.Broker.SignalSendTimeoutMS < 1 || c.Broker.SignalSendTimeoutMS > 60000 {
		return ValidationError{
			Field:   "broker.signal_send_timeout_ms",
			Value:   c.Broker.SignalSendTimeoutMS,
			Message: "must be between 1 and 60000",
		}
	}
	return nil
}

func (c *Config) validateFeedConfig() error {
	if !c.Feed.Enabled {
		return nil
	}
	if c.Feed.MaxConnections < 1 {
		return ValidationError{
			Field:   "feed.max_connections",
			Value:   c.Feed.MaxConnections,
			Message: "must be at least 1",
		}
	}
	if c.Feed.RateLimit < 0 {
		return ValidationError{
			Field:   "feed.rate_limit",
			Value:   c.Feed.RateLimit,
			Message: "must not be negative",
		}
	}
	return nil
}

func (c *Config) validateConcurrencyConfig() error {
	if c.Concurrency.CoordinatorPoolSize < 1 || c.Concurrency.CoordinatorPoolSize > 100 {
		return ValidationError{
			Field:   "concurrency.coordinator_pool_size",
			Value:   c.Concurrency.CoordinatorPoolSize,
			Message: "must be between 1 and 100",
		}
	}
	if c.Concurrency.CoordinatorPoolBuffer < 1 || c.Concurrency.CoordinatorPoolBuffer > 10000 {
		return ValidationError{
			Field:   "concurrency.coordinator_pool_buffer",
			Value:   c.Concurrency.CoordinatorPoolBuffer,
			Message: "must be between 1 and 10000",
		}
	}
	return nil
}

// expandEnvVars expands ${VAR} references in the raw YAML content
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		return os.Getenv(key)
	})
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
