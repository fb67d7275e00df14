package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iammorganparry/seans/internal/board"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SEANS_PORT", "")
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8742, cfg.Port)
	assert.Equal(t, "TL", cfg.Currency)
	assert.Equal(t, int64(100), cfg.FeeStep)
	assert.Equal(t, board.DefaultReminderTemplate, cfg.ReminderTemplate)
	assert.False(t, cfg.EnforceMinDate)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8742, cfg.Port)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 9000
currency: EUR
fee_step: 50
enforce_min_date: true
log_level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, int64(50), cfg.FeeStep)
	assert.True(t, cfg.EnforceMinDate)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	// Keys absent from the file keep their defaults.
	assert.Equal(t, board.DefaultReminderTemplate, cfg.ReminderTemplate)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\n"), 0o644))
	t.Setenv("SEANS_PORT", "9100")
	t.Setenv("SEANS_REMINDER_TEMPLATE", "Hatırlatma: {client}")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "Hatırlatma: {client}", cfg.ReminderTemplate)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"port too large", "port: 70000\n"},
		{"zero fee step", "fee_step: 0\n"},
		{"empty currency", "currency: \"\"\n"},
		{"empty template", "reminder_template: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [1, 2\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestOpenLogFile(t *testing.T) {
	cfg := Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "tui.log")

	w, closeFn := cfg.OpenLogFile()
	logger := cfg.NewLogger(w)
	logger.Info("hello", "k", "v")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
