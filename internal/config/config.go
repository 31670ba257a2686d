package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// AppName is used for the config directory and log service name
const AppName = "todo-tui"

// Config holds the application configuration
type Config struct {
	Store StoreConfig `toml:"store"`
	UI    UIConfig    `toml:"ui"`
	Log   LogConfig   `toml:"log"`
}

// StoreConfig selects the session task store
type StoreConfig struct {
	Backend string `toml:"backend"` // "sqlite" or "memory"; empty picks the first available
}

// UIConfig holds presentation settings
type UIConfig struct {
	Title string `toml:"title"`
	// ResetCategories clears the category checkboxes each time the add
	// dialog opens. When false the last ticks are kept for the session.
	ResetCategories bool `toml:"reset_categories"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`
	File    string `toml:"file"`
}

// Dir returns the configuration directory
func Dir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", AppName)
}

// Path returns the standard config file location
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: "sqlite",
		},
		UI: UIConfig{
			Title:           "To-do List",
			ResetCategories: true,
		},
		Log: LogConfig{
			Enabled: false,
			Level:   "info",
			File:    filepath.Join(Dir(), AppName+".log"),
		},
	}
}

// Load loads configuration from the standard location
func Load() (*Config, error) {
	if _, err := os.UserHomeDir(); err != nil {
		return nil, fmt.Errorf("getting home dir: %w", err)
	}
	return LoadFrom(Path())
}

// LoadFrom loads configuration from a specific path
func LoadFrom(configPath string) (*Config, error) {
	// Start with defaults
	cfg := Default()

	// No config file, return defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// Save saves the configuration to the standard location
func (c *Config) Save() error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return c.SaveTo(Path())
}

// SaveTo saves the configuration to a specific path
func (c *Config) SaveTo(configPath string) error {
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return nil
}
