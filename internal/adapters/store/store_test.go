package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.panid.dev/panid/internal/adapters/store"
	"go.panid.dev/panid/internal/core/domain"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	entry := &domain.CachedMapping{
		Mapping: domain.Mapping{
			TypeA: domain.ENSG,
			TypeB: domain.HGNCSymbol,
			Pairs: []domain.Pair{{A: "ENSG00000001084", B: "GCLC"}},
		},
		FetchedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Save(entry))

	got, err := s.Load(domain.ENSG, domain.HGNCSymbol)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.Mapping, got.Mapping)
	assert.True(t, entry.FetchedAt.Equal(got.FetchedAt))
}

func TestStore_Load_Missing(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	got, err := s.Load(domain.ENSG, domain.HGNCSymbol)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Load_OrientationAgnostic(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	entry := &domain.CachedMapping{
		Mapping: domain.Mapping{
			TypeA: domain.ENSG,
			TypeB: domain.HGNCSymbol,
			Pairs: []domain.Pair{{A: "ENSG00000001084", B: "GCLC"}},
		},
		FetchedAt: time.Now(),
	}
	require.NoError(t, s.Save(entry))

	got, err := s.Load(domain.HGNCSymbol, domain.ENSG)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.ENSG, got.Mapping.TypeA)
}

func TestStore_Load_Corrupt(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	entry := &domain.CachedMapping{
		Mapping:   domain.Mapping{TypeA: domain.ENSG, TypeB: domain.HGNCSymbol},
		FetchedAt: time.Now(),
	}
	require.NoError(t, s.Save(entry))

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	path := filepath.Join(s.Dir(), entries[0].Name())
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err = s.Load(domain.ENSG, domain.HGNCSymbol)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheCorrupt.Error())
}

func TestStore_Load_WrongPair(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	entry := &domain.CachedMapping{
		Mapping:   domain.Mapping{TypeA: domain.ENSG, TypeB: domain.HGNCSymbol},
		FetchedAt: time.Now(),
	}
	require.NoError(t, s.Save(entry))

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	src := filepath.Join(s.Dir(), entries[0].Name())
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	require.NoError(t, os.Remove(src))

	// Move the entry's content onto a different pair's slot.
	require.NoError(t, s.Save(&domain.CachedMapping{
		Mapping:   domain.Mapping{TypeA: domain.ENST, TypeB: domain.HGNCID},
		FetchedAt: time.Now(),
	}))
	entries, err = os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), entries[0].Name()), data, 0o644))

	_, err = s.Load(domain.ENST, domain.HGNCID)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheCorrupt.Error())
}

func TestStore_Purge(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	for _, pair := range [][2]domain.IDType{
		{domain.ENSG, domain.HGNCSymbol},
		{domain.ENST, domain.RefSeqRNAID},
	} {
		require.NoError(t, s.Save(&domain.CachedMapping{
			Mapping:   domain.Mapping{TypeA: pair[0], TypeB: pair[1]},
			FetchedAt: time.Now(),
		}))
	}
	keep := filepath.Join(s.Dir(), "notes.txt")
	require.NoError(t, os.WriteFile(keep, []byte("keep"), 0o644))

	require.NoError(t, s.Purge())

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "notes.txt", entries[0].Name())

	got, err := s.Load(domain.ENSG, domain.HGNCSymbol)
	require.NoError(t, err)
	assert.Nil(t, got)
}
