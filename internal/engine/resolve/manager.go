// Package resolve implements the freshness-bounded mapping table cache
// manager.
package resolve

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.panid.dev/panid/internal/core/domain"
	"go.panid.dev/panid/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager implements ports.MappingSource. It serves mapping tables from
// the store while they are younger than the retention window and
// refetches them otherwise. When the remote source is down and a stale
// entry exists, the stale entry may be served instead of failing:
// best-effort freshness, not correctness-critical.
type Manager struct {
	store         ports.MappingStore
	fetcher       ports.Fetcher
	progress      ports.Progress
	log           ports.Logger
	retention     time.Duration
	staleFallback bool
	now           func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewManager creates a cache manager over the given store and fetcher.
func NewManager(store ports.MappingStore, fetcher ports.Fetcher, progress ports.Progress, log ports.Logger, settings *domain.Settings) *Manager {
	return &Manager{
		store:         store,
		fetcher:       fetcher,
		progress:      progress,
		log:           log,
		retention:     settings.Retention,
		staleFallback: settings.StaleFallback,
		now:           time.Now,
		locks:         make(map[string]*sync.Mutex),
	}
}

// Resolve returns the mapping table for the pair, refreshing it when the
// cached copy is missing or stale. Refreshes for the same pair are
// mutually exclusive; distinct pairs proceed in parallel.
func (m *Manager) Resolve(ctx context.Context, a, b domain.IDType) (*domain.Mapping, error) {
	unlock := m.lockPair(a, b)
	defer unlock()

	cached, err := m.store.Load(a, b)
	if err != nil {
		// Unreadable entries are refetched rather than failing the run.
		m.log.Warn(fmt.Sprintf("discarding unreadable cache entry for %s: %v", domain.PairKey(a, b), err))
		cached = nil
	}

	now := m.now()
	if cached != nil && cached.Fresh(now, m.retention) {
		// Same vertex name as the fetcher, so a cache hit shows up where
		// the download otherwise would.
		task := m.progress.Begin("biomart " + domain.PairKey(a, b))
		task.Cached()
		task.Done(nil)
		return &cached.Mapping, nil
	}

	mapping, fetchErr := m.fetcher.Fetch(ctx, a, b)
	if fetchErr != nil {
		if cached != nil && m.staleFallback {
			m.log.Warn(fmt.Sprintf(
				"remote source unavailable, serving stale mapping for %s (fetched %s): %v",
				domain.PairKey(a, b), cached.FetchedAt.Format(time.RFC3339), fetchErr,
			))
			return &cached.Mapping, nil
		}
		return nil, zerr.With(fetchErr, "pair", domain.PairKey(a, b))
	}

	entry := &domain.CachedMapping{Mapping: *mapping, FetchedAt: now}
	if err := m.store.Save(entry); err != nil {
		// Persisting is best effort; the next run simply refetches.
		m.log.Warn(fmt.Sprintf("failed to cache mapping for %s: %v", domain.PairKey(a, b), err))
	}

	return mapping, nil
}

// lockPair serializes refreshes per pair key. The key space is the fixed
// type registry, so locks are never evicted.
func (m *Manager) lockPair(a, b domain.IDType) func() {
	key := domain.PairKey(a, b)

	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}
