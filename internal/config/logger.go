package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Level maps the configured log level onto slog.
func (c *Config) Level() slog.Level {
	if c.LogLevel == "debug" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewLogger returns a JSON logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}

// OpenLogFile opens the configured log file for appending. When the file
// cannot be opened, logs are discarded and the returned closer is a no-op.
func (c *Config) OpenLogFile() (io.Writer, func() error) {
	if c.LogFile == "" {
		return io.Discard, func() error { return nil }
	}
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
		return io.Discard, func() error { return nil }
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, func() error { return nil }
	}
	return f, f.Close
}
