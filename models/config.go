package models

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the scrape pipeline and the race
// client. Values come from an optional YAML file with environment overrides.
type Config struct {
	// SiteURL is the scheme+host of the corpus site, no trailing slash.
	SiteURL string `yaml:"site_url"`
	// TOCPath is the path of the table of contents page.
	TOCPath string `yaml:"toc_path"`
	// SourceSuffix is appended to a page URL to request its raw wiki
	// markdown instead of rendered HTML.
	SourceSuffix string `yaml:"source_suffix"`
	// BatchSize is how many pending URLs one batch step claims.
	BatchSize int `yaml:"batch_size"`
	// DelayMillis is the pause between article fetches within a batch.
	DelayMillis int `yaml:"delay_millis"`
	// PageLimit truncates the parsed TOC during initialization. 0 = no limit.
	PageLimit int `yaml:"page_limit"`
	// DBPath overrides the default database location next to the binary.
	DBPath string `yaml:"db_path"`
	// SnapshotDir, when set, stores the raw markdown of every fetched
	// article for later inspection.
	SnapshotDir string `yaml:"snapshot_dir"`
	// UserAgent is sent on every outbound request.
	UserAgent string `yaml:"user_agent"`
	// RaceEndpoint receives word-completion progress updates. Empty
	// disables remote reporting.
	RaceEndpoint string `yaml:"race_endpoint"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		SiteURL:      "https://www.readthesequences.com",
		TOCPath:      "/Contents",
		SourceSuffix: "?action=source",
		BatchSize:    20,
		DelayMillis:  500,
		UserAgent:    "type-harder/1.0",
	}
}

// Delay returns the inter-article delay as a duration.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMillis) * time.Millisecond
}

// LoadConfig reads the YAML config at path, falling back to defaults when the
// file does not exist. Environment variables prefixed TYPE_HARDER_ override
// individual fields.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("batch_size must be positive, got %d", cfg.BatchSize)
	}
	if cfg.SiteURL == "" {
		return nil, fmt.Errorf("site_url must not be empty")
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TYPE_HARDER_SITE_URL"); v != "" {
		cfg.SiteURL = v
	}
	if v := os.Getenv("TYPE_HARDER_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TYPE_HARDER_SNAPSHOT_DIR"); v != "" {
		cfg.SnapshotDir = v
	}
	if v := os.Getenv("TYPE_HARDER_RACE_ENDPOINT"); v != "" {
		cfg.RaceEndpoint = v
	}
	if v := os.Getenv("TYPE_HARDER_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BatchSize = n
		}
	}
}
