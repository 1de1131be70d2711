package config

import (
	"os"
	"strconv"
	"time"

	"diamonddash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Dashboard DashboardConfig
	Metrics   MetricsConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

// DataConfig holds dataset source settings
type DataConfig struct {
	File string
}

// DashboardConfig holds view settings
type DashboardConfig struct {
	DefaultColumn string
	TablePageSize int
}

// MetricsConfig holds the ops listener settings
type MetricsConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    *loadServerConfig(),
		Data:      *loadDataConfig(),
		Dashboard: *loadDashboardConfig(),
		Metrics:   *loadMetricsConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Debug reports whether verbose error reporting is on.
func (c *Config) Debug() bool {
	return c.Server.GinMode == "debug"
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getEnvOrDefault("PORT", "8050"),
		GinMode:         getEnvOrDefault("GIN_MODE", "debug"),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		File: getEnvOrDefault("DATA_FILE", "data/diamonds.csv"),
	}
}

func loadDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		DefaultColumn: getEnvOrDefault("DEFAULT_COLUMN", "carat"),
		TablePageSize: getEnvIntOrDefault("TABLE_PAGE_SIZE", 10),
	}
}

func loadMetricsConfig() *MetricsConfig {
	return &MetricsConfig{
		Port:    getEnvOrDefault("METRICS_PORT", "9090"),
		Enabled: getEnvBoolOrDefault("METRICS_ENABLED", true),
	}
}

func validateConfig(config *Config) error {
	if config.Data.File == "" {
		return errors.ConfigInvalid("data file is required")
	}
	if config.Dashboard.DefaultColumn == "" {
		return errors.ConfigInvalid("default column is required")
	}
	if config.Dashboard.TablePageSize <= 0 {
		return errors.ConfigInvalid("table page size must be positive")
	}
	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid("GIN_MODE must be one of debug, release, test")
	}
	if config.Metrics.Enabled && config.Metrics.Port == config.Server.Port {
		return errors.ConfigInvalid("metrics port must differ from server port")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
