// ABOUTME: Nutrilog configuration management with XDG paths.
// ABOUTME: Handles settings, data directory resolution, and store opening.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/nutrilog-app/nutrilog/internal/store"
)

// Config stores nutrilog tool configuration.
type Config struct {
	// DataDir is the root directory for the key-value database.
	// Supports ~ expansion for home directory. Defaults to
	// ~/.local/share/nutrilog.
	DataDir string `json:"data_dir,omitempty"`

	// WaterGoalML is the default daily hydration goal in milliliters.
	WaterGoalML float64 `json:"water_goal_ml,omitempty"`

	// Verbose enables store-level logging.
	Verbose bool `json:"verbose,omitempty"`
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "nutrilog")
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore opens the key-value store in the configured data directory.
func (c *Config) OpenStore() (*store.Store, error) {
	var opts []store.Option
	if c.Verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			opts = append(opts, store.WithLogger(logger.Sugar()))
		}
	}
	return store.Open(filepath.Join(c.GetDataDir(), "db"), opts...)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "nutrilog", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
