package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Feed.RSS2JSONEndpoint != DefaultRSS2JSONEndpoint {
		t.Errorf("rss2json endpoint = %q, want default", cfg.Feed.RSS2JSONEndpoint)
	}
	if cfg.Feed.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("timeout = %d, want %d", cfg.Feed.TimeoutSeconds, DefaultTimeoutSeconds)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("data_dir: /tmp/otaple\nfeed:\n  timeout_seconds: 5\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != "/tmp/otaple" {
		t.Errorf("data_dir = %q, want /tmp/otaple", cfg.DataDir)
	}
	if cfg.Feed.TimeoutSeconds != 5 {
		t.Errorf("timeout = %d, want 5", cfg.Feed.TimeoutSeconds)
	}
	// Untouched fields keep defaults.
	if cfg.Feed.MaxFeedItems != DefaultMaxFeedItems {
		t.Errorf("max_feed_items = %d, want default", cfg.Feed.MaxFeedItems)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OTAPLE_RSS2JSON_ENDPOINT", "https://alt.example/api")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Feed.RSS2JSONEndpoint != "https://alt.example/api" {
		t.Errorf("endpoint = %q, want env override", cfg.Feed.RSS2JSONEndpoint)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("feed:\n  timeout_seconds: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with negative timeout should fail validation")
	}
}
