// Package file loads and saves the retrace configuration from a TOML file
// in the user's config directory.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full configuration tree. Zero values mean "use the
// default"; Normalize fills them in after load.
type Config struct {
	Profile  ProfileConfig  `toml:"profile"`
	DevTools DevToolsConfig `toml:"devtools"`
	Search   SearchConfig   `toml:"search"`
	Domains  DomainsConfig  `toml:"domains"`
}

// ProfileConfig locates the browser profile on disk.
type ProfileConfig struct {
	// Dir is the profile directory. Empty means the platform default for
	// Chrome's "Default" profile.
	Dir string `toml:"dir"`

	// HistoryPath and BookmarksPath override the file locations inside
	// the profile directory. Normally left empty.
	HistoryPath   string `toml:"history_path"`
	BookmarksPath string `toml:"bookmarks_path"`
}

// DevToolsConfig locates the remote-debugging endpoint.
type DevToolsConfig struct {
	URL string `toml:"url"`
}

// SearchConfig tunes the search pipeline.
type SearchConfig struct {
	// DefaultLimit is the result cap when no --limit flag is given.
	DefaultLimit int `toml:"default_limit"`

	// FetchLimit caps how many rows each source fetches before merging.
	FetchLimit int `toml:"fetch_limit"`

	// DebounceMS is the interactive-mode keystroke debounce in
	// milliseconds.
	DebounceMS int `toml:"debounce_ms"`
}

// DomainsConfig tunes domain suggestions.
type DomainsConfig struct {
	LookbackDays    int `toml:"lookback_days"`
	MaxHistoryItems int `toml:"max_history_items"`
	MaxDomains      int `toml:"max_domains"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg := Config{}
	cfg.Normalize()
	return cfg
}

// Normalize fills zero values with their defaults.
func (c *Config) Normalize() {
	if c.Profile.Dir == "" {
		c.Profile.Dir = defaultProfileDir()
	}
	if c.Profile.HistoryPath == "" {
		c.Profile.HistoryPath = filepath.Join(c.Profile.Dir, "History")
	}
	if c.Profile.BookmarksPath == "" {
		c.Profile.BookmarksPath = filepath.Join(c.Profile.Dir, "Bookmarks")
	}
	if c.DevTools.URL == "" {
		c.DevTools.URL = "http://127.0.0.1:9222"
	}
	if c.Search.DefaultLimit <= 0 {
		c.Search.DefaultLimit = 50
	}
	if c.Search.FetchLimit <= 0 {
		c.Search.FetchLimit = 200
	}
	if c.Search.DebounceMS <= 0 {
		c.Search.DebounceMS = 200
	}
	if c.Domains.LookbackDays <= 0 {
		c.Domains.LookbackDays = 14
	}
	if c.Domains.MaxHistoryItems <= 0 {
		c.Domains.MaxHistoryItems = 2000
	}
	if c.Domains.MaxDomains <= 0 {
		c.Domains.MaxDomains = 20
	}
}

// DefaultPath returns the default config file location,
// ~/.retrace/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".retrace", "config.toml"), nil
}

// Load reads the config file at path. A missing file yields the defaults
// without error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Save writes the config to path, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
