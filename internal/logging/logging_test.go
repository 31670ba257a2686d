package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesJSONToFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := Init("todo-tui", config.LogConfig{Enabled: true, Level: "debug", File: path})
	require.NoError(t, err)
	t.Cleanup(func() { Close() })

	log.WithField("id", "t_1").Debug("task added")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "task added", entry["message"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "todo-tui", entry["service"])
	assert.Equal(t, "t_1", entry["id"])
	assert.Contains(t, entry, "ts")
}

func TestInit_DisabledDiscards(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := Init("todo-tui", config.LogConfig{Enabled: false, Level: "info", File: path})
	require.NoError(t, err)
	log.Info("hello")

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestInit_EnvOverridesLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	_, err := Init("todo-tui", config.LogConfig{Level: "debug"})
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, Logger.GetLevel())
}

func TestInit_BadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	_, err := Init("todo-tui", config.LogConfig{Level: "chatty"})
	assert.Error(t, err)
}
