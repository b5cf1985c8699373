package config

import (
	"os"
	"path/filepath"

	"debtwise/internal/logger"
)

type Config struct {
	// Snapshot Configuration
	SnapshotPath string
	RedisAddr    string // when set, the redis store replaces the file store

	// OpenAI Configuration (optional; advisor falls back to templates)
	OpenAIAPIKey string
	OpenAIModel  string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		SnapshotPath:  getEnv("DEBTWISE_SNAPSHOT", defaultSnapshotPath()),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		LogLevel:      getEnv("LOG_LEVEL", "warn"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}
	return config, nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

// defaultSnapshotPath puts the snapshot under the user's home directory,
// falling back to the working directory when home is unknown.
func defaultSnapshotPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "debtwise.json"
	}
	return filepath.Join(home, ".debtwise", "portfolio.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
