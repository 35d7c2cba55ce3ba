package ports

import "go.panid.dev/panid/internal/core/domain"

// MappingStore persists mapping tables between runs, keyed by the
// unordered pair of identifier types they connect.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type MappingStore interface {
	// Load returns the cached entry for the pair, or nil, nil when no
	// entry exists yet. Unreadable entries wrap domain.ErrCacheCorrupt.
	Load(a, b domain.IDType) (*domain.CachedMapping, error)

	// Save replaces the entry for the pair atomically; concurrent readers
	// never observe a half-written table.
	Save(entry *domain.CachedMapping) error

	// Purge removes every cache entry.
	Purge() error
}
