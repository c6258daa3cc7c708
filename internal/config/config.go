package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when CONFIG_PATH is not set
const DefaultConfigPath = "config.yaml"

// Config structure represents the application configuration
type Config struct {
	App struct {
		Title string `yaml:"title" env:"APP_TITLE"`
	} `yaml:"app"`

	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		IdleTimeout     string `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a YAML file, a .env file and the
// process environment, in that order of increasing precedence.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadDotEnv reads .env into the process environment outside production.
// Variables already present in the environment are not overwritten, and a
// missing file is not an error.
func loadDotEnv() error {
	goEnv := os.Getenv("GO_ENV")
	if goEnv != "" && goEnv != "development" {
		return nil
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.App.Title = "Sistem Manajemen Data Siswa"

	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"
	config.Server.IdleTimeout = "120s"
	config.Server.ShutdownTimeout = "10s"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}

	switch config.Server.Mode {
	case "development", "release", "test":
	default:
		return fmt.Errorf("unknown server mode %q", config.Server.Mode)
	}

	durations := map[string]string{
		"read_timeout":     config.Server.ReadTimeout,
		"write_timeout":    config.Server.WriteTimeout,
		"idle_timeout":     config.Server.IdleTimeout,
		"shutdown_timeout": config.Server.ShutdownTimeout,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid server %s format: %w", name, err)
		}
	}

	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
