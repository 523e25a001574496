// Package config provides configuration management for the hh-permissions CLI.
//
// It implements the disciplined Viper pattern where Viper stays contained
// in this package and the rest of the codebase receives explicit Config structs.
// Configuration sources are resolved in this order: flags > env > env file > defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config is the explicit configuration struct for one audit invocation.
// This is what the rest of the codebase sees.
type Config struct {
	ProjectID       string
	CredentialsPath string
	LogLevel        slog.Level
}

// ConfigurationError reports a missing or invalid configuration field.
// It is returned before any network call is attempted.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// CRITICAL has no slog equivalent; it sits one band above ERROR so a
// CRITICAL threshold suppresses plain errors.
const LevelCritical = slog.LevelError + 4

// Init binds environment variables and sets defaults
func Init() error {
	viper.SetDefault("log-level", "INFO")
	viper.SetDefault("output", "table")

	if err := viper.BindEnv("project-id", "GOOGLE_CLOUD_PROJECT"); err != nil {
		return err
	}
	if err := viper.BindEnv("credentials", "GOOGLE_APPLICATION_CREDENTIALS"); err != nil {
		return err
	}
	if err := viper.BindEnv("log-level", "LOG_LEVEL"); err != nil {
		return err
	}

	return nil
}

// LoadEnvFile loads the given environment file into the process
// environment. Variables already present in the environment keep their
// values, so real env vars win over env-file entries.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return &ConfigurationError{Field: "env-file", Reason: fmt.Sprintf("environment file not found at %s", path)}
	}
	if err := gotenv.Load(path); err != nil {
		return &ConfigurationError{Field: "env-file", Reason: fmt.Sprintf("failed to load %s: %v", path, err)}
	}
	return nil
}

// Load reads from all sources and returns explicit Config
func Load() (*Config, error) {
	projectID := viper.GetString("project-id")
	if projectID == "" {
		return nil, &ConfigurationError{
			Field:  "project-id",
			Reason: "set --project-id or the GOOGLE_CLOUD_PROJECT environment variable",
		}
	}

	credentials := viper.GetString("credentials")
	if credentials == "" {
		return nil, &ConfigurationError{
			Field:  "credentials",
			Reason: "set the GOOGLE_APPLICATION_CREDENTIALS environment variable",
		}
	}
	if _, err := os.Stat(credentials); err != nil {
		return nil, &ConfigurationError{
			Field:  "credentials",
			Reason: fmt.Sprintf("credentials file not found at %s", credentials),
		}
	}

	level, err := ParseLogLevel(viper.GetString("log-level"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ProjectID:       projectID,
		CredentialsPath: credentials,
		LogLevel:        level,
	}, nil
}

// ParseLogLevel maps a level name (DEBUG, INFO, WARNING, ERROR, CRITICAL)
// to a slog level. Names are case-insensitive.
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	default:
		return 0, &ConfigurationError{
			Field:  "log-level",
			Reason: fmt.Sprintf("invalid level %q (must be DEBUG, INFO, WARNING, ERROR, or CRITICAL)", name),
		}
	}
}
