package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// ClientConfig configures the mwell command-line client.
type ClientConfig struct {
	BaseURL   string
	Token     string
	Timeout   time.Duration
	LocalFile string
	Logger    LoggerConfig
}

// LoadClient reads client settings from the environment and an optional
// .env file. Flags override these values.
func LoadClient() (*ClientConfig, error) {
	_ = godotenv.Load()

	cfg := &ClientConfig{
		BaseURL:   getEnv("MWELL_API_URL", "http://localhost:8080"),
		Token:     getEnv("MWELL_TOKEN", ""),
		Timeout:   getEnvAsDuration("MWELL_TIMEOUT", 10*time.Second),
		LocalFile: getEnv("MWELL_LOCAL_FILE", defaultLocalFile()),
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Format: getEnv("LOG_FORMAT", "console"),
			Output: os.Stderr,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate validates the client configuration.
func (c *ClientConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("client timeout must be positive")
	}
	if c.LocalFile == "" {
		return fmt.Errorf("local appointment file is required")
	}
	return c.Logger.validate()
}

func defaultLocalFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "mwell", "appointments.json")
}
