// Package store implements the on-disk mapping table store.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.panid.dev/panid/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.MappingStore using one JSON file per identifier
// type pair. Filenames are the xxhash64 digest of the canonical pair key,
// so both orientations of a pair land in the same file.
type Store struct {
	dir string
}

// New creates a mapping store rooted at dir, creating the directory if
// needed.
func New(dir string) (*Store, error) {
	clean := filepath.Clean(dir)
	if err := os.MkdirAll(clean, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create cache directory")
	}
	return &Store{dir: clean}, nil
}

// Dir returns the cache directory the store is rooted at.
func (s *Store) Dir() string {
	return s.dir
}

// Load retrieves the cached entry for the pair. Returns nil, nil when no
// entry exists yet; unreadable entries wrap domain.ErrCacheCorrupt.
func (s *Store) Load(a, b domain.IDType) (*domain.CachedMapping, error) {
	path := s.entryPath(a, b)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrCacheCorrupt.Error())
	}

	var entry domain.CachedMapping
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheCorrupt.Error())
	}

	// A hash collision or a renamed cache dir could surface a file for a
	// different pair.
	if !entry.Mapping.Connects(a, b) {
		return nil, zerr.With(domain.ErrCacheCorrupt, "path", path)
	}

	return &entry, nil
}

// Save replaces the entry for the pair atomically via a temp file and
// rename, so concurrent readers never observe a half-written table.
func (s *Store) Save(entry *domain.CachedMapping) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	path := s.entryPath(entry.Mapping.TypeA, entry.Mapping.TypeB)
	if err := atomicWriteFile(path, data); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

// Purge removes every cache entry.
func (s *Store) Purge() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrStorePurgeFailed.Error())
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			return zerr.Wrap(err, domain.ErrStorePurgeFailed.Error())
		}
	}

	return nil
}

func (s *Store) entryPath(a, b domain.IDType) string {
	sum := xxhash.Sum64String(domain.PairKey(a, b))
	return filepath.Join(s.dir, fmt.Sprintf("%016x.json", sum))
}

// atomicWriteFile writes data to a file atomically by writing to a temp
// file in the same directory and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "mapping-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
