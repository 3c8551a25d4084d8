package iologger_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportdb/sportdb/internal/iologger"
	"github.com/sportdb/sportdb/pkg/config"
)

func TestInitFile(t *testing.T) {
	logDir := t.TempDir()
	cfg := config.LogConfig{
		Format:      "json",
		Level:       "debug",
		Destination: "file",
	}
	require.NoError(t, iologger.Init(logDir, cfg, false))

	slog.Debug("sample entry", "key", "value")

	logPath := filepath.Join(logDir, config.AppName+".log")
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sample entry")
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestInitAppend(t *testing.T) {
	logDir := t.TempDir()
	cfg := config.LogConfig{
		Format:      "text",
		Level:       "info",
		Destination: "file",
	}
	require.NoError(t, iologger.Init(logDir, cfg, false))
	slog.Info("first entry")

	require.NoError(t, iologger.Init(logDir, cfg, true))
	slog.Info("second entry")

	logPath := filepath.Join(logDir, config.AppName+".log")
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first entry")
	assert.Contains(t, string(data), "second entry")
}

func TestInitStderr(t *testing.T) {
	cfg := config.LogConfig{
		Format:      "text",
		Level:       "warn",
		Destination: "stderr",
	}
	assert.NoError(t, iologger.Init(t.TempDir(), cfg, false))
}
