package listing

import (
	"fmt"
	"os"
	"path/filepath"

	"listing-manager/feature/listing/models"
)

// Store owns the single on-disk listing collection. Replace writes the full
// encoded collection to a temporary file in the same directory and renames
// it over the canonical path, so a concurrent or crash-interrupted Load
// observes either the old or the new collection in full, never a mix.
//
// Store itself does no locking; the Service serializes writers.
type Store struct {
	path string
}

// NewStore creates a store over the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the canonical storage path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) tmpPath() string {
	return s.path + ".tmp"
}

// Load reads the full collection. A missing or unreadable file yields an
// empty collection.
func (s *Store) Load() []models.Listing {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []models.Listing{}
	}
	return decodeListings(data)
}

// Replace atomically swaps the stored collection for the given one. The
// containing directory is created if absent. A stale temporary file left by
// a crash between write and rename is removed before writing the new one.
func (s *Store) Replace(listings []models.Listing) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	data, err := encodeListings(listings)
	if err != nil {
		return fmt.Errorf("failed to encode listings: %w", err)
	}

	tmp := s.tmpPath()
	_ = os.Remove(tmp)

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}
