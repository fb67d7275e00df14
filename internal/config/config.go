package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/iammorganparry/seans/internal/board"
)

type Config struct {
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	// Display
	Currency string `yaml:"currency"`
	FeeStep  int64  `yaml:"fee_step"`
	// Reminders
	ReminderTemplate string `yaml:"reminder_template"`
	// Form
	EnforceMinDate bool `yaml:"enforce_min_date"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:             8742,
		LogLevel:         "info",
		LogFile:          defaultLogFile(),
		Currency:         "TL",
		FeeStep:          100,
		ReminderTemplate: board.DefaultReminderTemplate,
	}
}

// Load reads the YAML file at path (skipped when path is empty or missing),
// then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	cfg.Port = envInt("SEANS_PORT", cfg.Port)
	cfg.LogLevel = envStr("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = envStr("SEANS_LOG_FILE", cfg.LogFile)
	cfg.Currency = envStr("SEANS_CURRENCY", cfg.Currency)
	cfg.FeeStep = int64(envInt("SEANS_FEE_STEP", int(cfg.FeeStep)))
	cfg.ReminderTemplate = envStr("SEANS_REMINDER_TEMPLATE", cfg.ReminderTemplate)
	cfg.EnforceMinDate = envBool("SEANS_ENFORCE_MIN_DATE", cfg.EnforceMinDate)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// DefaultPath is ~/.seans/config.yaml, or empty if the home directory is unknown.
func DefaultPath() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("SEANS_PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.FeeStep <= 0 {
		return fmt.Errorf("SEANS_FEE_STEP must be positive, got %d", c.FeeStep)
	}
	if c.Currency == "" {
		return fmt.Errorf("SEANS_CURRENCY must not be empty")
	}
	if c.ReminderTemplate == "" {
		return fmt.Errorf("SEANS_REMINDER_TEMPLATE must not be empty")
	}
	return nil
}

// configDir returns ~/.seans
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".seans"), nil
}

func defaultLogFile() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "seans-tui.log")
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}
