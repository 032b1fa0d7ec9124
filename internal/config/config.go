// Package config loads planner configuration from an optional YAML file,
// applying defaults and environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file is absent or fields are unset.
const (
	DefaultRSS2JSONEndpoint = "https://api.rss2json.com/v1/api.json"
	DefaultProxyEndpoint    = "https://api.allorigins.win/raw?url="
	DefaultTimeoutSeconds   = 9
	DefaultMaxFeedItems     = 26
	DefaultDataDir          = "~/.local/share/otaple"
)

// Feed holds live-collection tunables.
type Feed struct {
	// RSS2JSONEndpoint is the primary JSON conversion API for RSS feeds.
	RSS2JSONEndpoint string `yaml:"rss2json_endpoint"`
	// ProxyEndpoint is the raw-passthrough proxy used as the fallback path.
	ProxyEndpoint string `yaml:"proxy_endpoint"`
	// TimeoutSeconds bounds each retrieval path per query.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// MaxFeedItems caps how many items are taken from a single feed.
	MaxFeedItems int `yaml:"max_feed_items"`
}

// Config is the top-level planner configuration.
type Config struct {
	// DataDir stores the last request and plan snapshots.
	DataDir string `yaml:"data_dir"`
	Feed    Feed   `yaml:"feed"`
}

// Default returns a config populated with all defaults.
func Default() Config {
	return Config{
		DataDir: DefaultDataDir,
		Feed: Feed{
			RSS2JSONEndpoint: DefaultRSS2JSONEndpoint,
			ProxyEndpoint:    DefaultProxyEndpoint,
			TimeoutSeconds:   DefaultTimeoutSeconds,
			MaxFeedItems:     DefaultMaxFeedItems,
		},
	}
}

// Load reads the YAML config at path. A missing file yields the defaults.
// Environment variables override file values: OTAPLE_RSS2JSON_ENDPOINT,
// OTAPLE_PROXY_ENDPOINT, OTAPLE_DATA_DIR.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		expanded, err := ExpandHome(path)
		if err != nil {
			return cfg, err
		}
		data, err := os.ReadFile(expanded)
		switch {
		case os.IsNotExist(err):
			// fall through to defaults
		case err != nil:
			return cfg, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	if v := os.Getenv("OTAPLE_RSS2JSON_ENDPOINT"); v != "" {
		cfg.Feed.RSS2JSONEndpoint = v
	}
	if v := os.Getenv("OTAPLE_PROXY_ENDPOINT"); v != "" {
		cfg.Feed.ProxyEndpoint = v
	}
	if v := os.Getenv("OTAPLE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Feed.TimeoutSeconds <= 0 {
		return fmt.Errorf("feed.timeout_seconds must be positive, got %d", c.Feed.TimeoutSeconds)
	}
	if c.Feed.MaxFeedItems <= 0 {
		return fmt.Errorf("feed.max_feed_items must be positive, got %d", c.Feed.MaxFeedItems)
	}
	if c.Feed.RSS2JSONEndpoint == "" || c.Feed.ProxyEndpoint == "" {
		return fmt.Errorf("feed endpoints must not be empty")
	}
	return nil
}

// ExpandHome expands a leading ~/ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
