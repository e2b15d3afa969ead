package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnvVars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		envVars  map[string]string
		expected string
	}{
		{
			name:  "expand single env var",
			input: "grpc_port: ${TEST_GRPC_PORT}",
			envVars: map[string]string{
				"TEST_GRPC_PORT": "50051",
			},
			expected: "grpc_port: 50051",
		},
		{
			name:  "expand multiple env vars",
			input: "grpc_port: ${GRPC_PORT}\nlog_level: ${LOG_LEVEL}",
			envVars: map[string]string{
				"GRPC_PORT": "6000",
				"LOG_LEVEL": "DEBUG",
			},
			expected: "grpc_port: 6000\nlog_level: DEBUG",
		},
		{
			name:     "missing env var returns empty string",
			input:    "grpc_port: ${MISSING_VAR}",
			envVars:  map[string]string{},
			expected: "grpc_port: ",
		},
		{
			name:  "mixed static and env vars",
			input: "static_value: 123\nlog_level: ${TEST_LEVEL}",
			envVars: map[string]string{
				"TEST_LEVEL": "WARN",
			},
			expected: "static_value: 123\nlog_level: WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Set up environment variables
			for k, v := range tt.envVars {
				os.Setenv(k, v)
				defer os.Unsetenv(k)
			}

			result := expandEnvVars(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoadConfigWithEnvVars(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "config-test-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	configContent := `server:
  grpc_port: ${TEST_BROKER_GRPC_PORT}
  observability_port: 9090

system:
  log_level: "INFO"

broker:
  delivery_queue_depth: 128
  signal_send_timeout_ms: 500

feed:
  enabled: true
  max_connections: 100
  rate_limit: 5
  rate_burst: 10

telemetry:
  enable_metrics: true

concurrency:
  coordinator_pool_size: 4
  coordinator_pool_buffer: 256
`

	_, err = tmpFile.Write([]byte(configContent))
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	os.Setenv("TEST_BROKER_GRPC_PORT", "6001")
	defer os.Unsetenv("TEST_BROKER_GRPC_PORT")

	cfg, err := LoadConfig(tmpFile.Name())
	require.NoError(t, err)

	assert.Equal(t, 6001, cfg.Server.GRPCPort)
	assert.Equal(t, 9090, cfg.Server.ObservabilityPort)
	assert.Equal(t, "INFO", cfg.System.LogLevel)
	assert.Equal(t, 128, cfg.Broker.DeliveryQueueDepth)
	assert.Equal(t, 500, cfg.Broker.SignalSendTimeoutMS)
	assert.Equal(t, 4, cfg.Concurrency.CoordinatorPoolSize)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/broker.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid defaults",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "invalid grpc port",
			mutate:  func(c *Config) { c.Server.GRPCPort = 0 },
			wantErr: "server.grpc_port",
		},
		{
			name:    "observability port collides with grpc port",
			mutate:  func(c *Config) { c.Server.ObservabilityPort = c.Server.GRPCPort },
			wantErr: "server.observability_port",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.System.LogLevel = "VERBOSE" },
			wantErr: "system.log_level",
		},
		{
			name:    "delivery queue depth too small",
			mutate:  func(c *Config) { c.Broker.DeliveryQueueDepth = 0 },
			wantErr: "broker.delivery_queue_depth",
		},
		{
			name:    "signal send timeout too large",
			mutate:  func(c *Config) { c.Broker.SignalSendTimeoutMS = 120000 },
			wantErr: "broker.signal_send_timeout_ms",
		},
		{
			name:    "feed max connections zero",
			mutate:  func(c *Config) { c.Feed.MaxConnections = 0 },
			wantErr: "feed.max_connections",
		},
		{
			name: "feed validation skipped when disabled",
			mutate: func(c *Config) {
				c.Feed.Enabled = false
				c.Feed.MaxConnections = 0
			},
			wantErr: "",
		},
		{
			name:    "coordinator pool size zero",
			mutate:  func(c *Config) { c.Concurrency.CoordinatorPoolSize = 0 },
			wantErr: "concurrency.coordinator_pool_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr),
				"error %q should mention %q", err.Error(), tt.wantErr)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{Field: "server.grpc_port", Value: -1, Message: "must be a valid TCP port"}
	assert.Equal(t, "validation error for field 'server.grpc_port' (value: -1): must be a valid TCP port", err.Error())
}
