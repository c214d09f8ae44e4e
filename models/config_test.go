package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.SiteURL != "https://www.readthesequences.com" {
		t.Errorf("SiteURL = %q", cfg.SiteURL)
	}
	if cfg.BatchSize != 20 {
		t.Errorf("BatchSize = %d, want 20", cfg.BatchSize)
	}
	if cfg.Delay() != 500*time.Millisecond {
		t.Errorf("Delay() = %v, want 500ms", cfg.Delay())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `site_url: http://localhost:9999
batch_size: 5
delay_millis: 0
page_limit: 10
snapshot_dir: ./snaps
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.SiteURL != "http://localhost:9999" {
		t.Errorf("SiteURL = %q", cfg.SiteURL)
	}
	if cfg.BatchSize != 5 || cfg.PageLimit != 10 || cfg.SnapshotDir != "./snaps" {
		t.Errorf("cfg = %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.TOCPath != "/Contents" {
		t.Errorf("TOCPath = %q", cfg.TOCPath)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("TYPE_HARDER_SITE_URL", "http://override:1234")
	t.Setenv("TYPE_HARDER_BATCH_SIZE", "3")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.SiteURL != "http://override:1234" {
		t.Errorf("SiteURL = %q", cfg.SiteURL)
	}
	if cfg.BatchSize != 3 {
		t.Errorf("BatchSize = %d, want 3", cfg.BatchSize)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("batch_size: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() accepted batch_size 0")
	}

	if err := os.WriteFile(path, []byte("site_url: \"\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() accepted empty site_url")
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("site_url: [unclosed\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() accepted malformed YAML")
	}
}
