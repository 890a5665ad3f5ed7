// Package cache maps document URLs to local file slots holding sanitized,
// pretty-printed JSON.
package cache

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"w3u-navigator/internal/model"
)

// Store is a flat directory of cached document slots. Keys derive from the
// URL path basename, so two distinct URLs sharing a basename collide and
// silently overwrite each other.
type Store struct {
	Dir string
}

// New returns a Store rooted at dir, defaulting to the working directory.
func New(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{Dir: dir}
}

// Key derives the slot filename for a document URL.
func (s *Store) Key(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return model.DefaultCacheName
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return model.DefaultCacheName
	}
	return name
}

func (s *Store) slotPath(rawURL string) string {
	return filepath.Join(s.Dir, s.Key(rawURL))
}

// Get reads the slot for a URL. A missing slot is a miss, not an error.
func (s *Store) Get(rawURL string) (string, bool, error) {
	data, err := os.ReadFile(s.slotPath(rawURL))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read cache slot: %w", err)
	}
	return string(data), true, nil
}

// Put writes text to the URL's slot atomically using a temp file and rename,
// overwriting any prior content. It returns the absolute slot path.
func (s *Store) Put(rawURL, text string) (string, error) {
	slot := s.slotPath(rawURL)
	tmp := slot + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to write temp cache slot: %w", err)
	}
	if err := os.Rename(tmp, slot); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to rename cache slot: %w", err)
	}
	abs, err := filepath.Abs(slot)
	if err != nil {
		return slot, nil
	}
	return abs, nil
}

// Invalidate deletes the slot for a URL. Deleting an absent slot is not an
// error.
func (s *Store) Invalidate(rawURL string) error {
	err := os.Remove(s.slotPath(rawURL))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache slot: %w", err)
	}
	return nil
}

// Slot describes one cached document file.
type Slot struct {
	Name string
	Size int64
}

// List enumerates cached document slots in the store directory.
func (s *Store) List() ([]Slot, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}
	var slots []Slot
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".w3u") && !strings.HasSuffix(name, ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		slots = append(slots, Slot{Name: name, Size: info.Size()})
	}
	return slots, nil
}
