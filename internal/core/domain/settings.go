package domain

import "time"

// Settings holds the resolved runtime configuration.
type Settings struct {
	// CacheDir is the directory holding cached mapping tables.
	CacheDir string

	// Retention is the freshness window for cached mapping tables.
	Retention time.Duration

	// StaleFallback controls whether a stale cache entry is served when
	// the remote source is unreachable. Best-effort freshness, not
	// correctness-critical.
	StaleFallback bool

	// BioMartURL is the martservice endpoint queried for mapping data.
	BioMartURL string

	// BioMartDataset is the mart dataset name.
	BioMartDataset string

	// FetchTimeout bounds a single martservice request.
	FetchTimeout time.Duration
}

// DefaultSettings returns the configuration used when no config file is
// present.
func DefaultSettings() Settings {
	return Settings{
		CacheDir:       DefaultCacheDir,
		Retention:      DefaultRetention,
		StaleFallback:  true,
		BioMartURL:     "https://asia.ensembl.org/biomart/martservice",
		BioMartDataset: "hsapiens_gene_ensembl",
		FetchTimeout:   30 * time.Second,
	}
}
