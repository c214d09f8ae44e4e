// Package storage persists raw markdown snapshots of fetched articles so
// failed parses can be re-examined without refetching.
package storage

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// SnapshotStore writes one file per article URL under a base directory.
type SnapshotStore struct {
	dir string
}

func NewSnapshotStore(dir string) (*SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot dir %s: %w", dir, err)
	}
	return &SnapshotStore{dir: dir}, nil
}

// Path returns the snapshot file path for a URL.
func (s *SnapshotStore) Path(rawURL string) string {
	return filepath.Join(s.dir, slug(rawURL)+".md")
}

func (s *SnapshotStore) Save(rawURL string, content []byte) error {
	if err := os.WriteFile(s.Path(rawURL), content, 0644); err != nil {
		return fmt.Errorf("failed to save snapshot for %s: %w", rawURL, err)
	}
	return nil
}

func (s *SnapshotStore) Read(rawURL string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(rawURL))
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot for %s: %w", rawURL, err)
	}
	return data, nil
}

func (s *SnapshotStore) Has(rawURL string) bool {
	_, err := os.Stat(s.Path(rawURL))
	return err == nil
}

// slug derives a filesystem-friendly name from a URL.
func slug(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return sanitize(rawURL)
	}
	host := strings.ReplaceAll(parsed.Host, ".", "_")
	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return host
	}
	return host + "-" + sanitize(path)
}

func sanitize(s string) string {
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "?", "_")
	s = strings.ReplaceAll(s, ".", "_")
	return s
}
