// ABOUTME: Configuration management with storage backend selection
// ABOUTME: Handles settings, search defaults, and the backend factory function

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/murmure/internal/backend"
	"github.com/harper/murmure/internal/search"
	"github.com/harper/murmure/internal/store"
)

// Config stores murmure configuration.
type Config struct {
	// Backend selects the storage backend: "file" (default), "sqlite",
	// or "charm".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for the file backend.
	// Supports ~ expansion. Defaults to ~/.local/share/murmure.
	DataDir string `json:"data_dir,omitempty"`

	// RetentionDays is the trash retention window. Defaults to 30.
	RetentionDays int `json:"retention_days,omitempty"`

	// Search overrides parts of the default search configuration.
	Search *SearchConfig `json:"search,omitempty"`
}

// SearchConfig holds the user-tunable search settings.
type SearchConfig struct {
	CaseSensitive  bool     `json:"case_sensitive,omitempty"`
	WholeWordsOnly bool     `json:"whole_words_only,omitempty"`
	MinScore       *float64 `json:"min_score,omitempty"`
	MinQueryLength *int     `json:"min_query_length,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "file".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "file"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return defaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetRetentionDays returns the trash retention window.
func (c *Config) GetRetentionDays() int {
	if c.RetentionDays <= 0 {
		return store.DefaultRetentionDays
	}
	return c.RetentionDays
}

// SearchSettings merges the config overrides onto the engine defaults.
func (c *Config) SearchSettings() search.Config {
	cfg := search.DefaultConfig()
	if c.Search == nil {
		return cfg
	}
	cfg.CaseSensitive = c.Search.CaseSensitive
	cfg.WholeWordsOnly = c.Search.WholeWordsOnly
	if c.Search.MinScore != nil {
		cfg.MinScore = *c.Search.MinScore
	}
	if c.Search.MinQueryLength != nil {
		cfg.MinQueryLength = *c.Search.MinQueryLength
	}
	return cfg
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

// OpenBackend creates a Backend implementation based on the configured
// backend.
func (c *Config) OpenBackend() (backend.Backend, error) {
	switch c.GetBackend() {
	case "file":
		return backend.NewFileBackend(c.GetDataDir())
	case "sqlite":
		return backend.NewSQLiteBackend(filepath.Join(c.GetDataDir(), "murmure.db"))
	case "charm":
		return backend.NewCharmBackend(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "murmure", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			if saveErr := cfg.Save(); saveErr != nil {
				fmt.Fprintf(os.Stderr, "warning: could not save default config: %v\n", saveErr)
			}
			return cfg, nil
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
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// defaultDataDir returns the standard XDG data directory for murmure.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "murmure")
}
