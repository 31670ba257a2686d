package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cfg := Default()
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "To-do List", cfg.UI.Title)
	assert.True(t, cfg.UI.ResetCategories)
	assert.False(t, cfg.Log.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/home/tester/.config/todo-tui/todo-tui.log", cfg.Log.File)
}

func TestLoadFrom_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFrom_OverridesAndExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[store]
backend = "memory"

[ui]
reset_categories = false

[log]
enabled = true
level = "debug"
file = "~/logs/todo.log"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.False(t, cfg.UI.ResetCategories)
	assert.Equal(t, "To-do List", cfg.UI.Title, "unset keys keep their defaults")
	assert.True(t, cfg.Log.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, filepath.Join(home, "logs", "todo.log"), cfg.Log.File)
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[store\nbackend = 1"), 0644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestSaveToThenLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Store.Backend = "memory"
	cfg.UI.Title = "Chores"
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_CreatesDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, Default().Save())

	_, err := os.Stat(filepath.Join(home, ".config", "todo-tui", "config.toml"))
	assert.NoError(t, err)
}
