package domain

import "time"

const (
	// DefaultCacheDir is where mapping tables are cached between runs.
	DefaultCacheDir = "/var/tmp/panid_cache"

	// DefaultRetention is how long a cached mapping table stays fresh
	// before the next resolution triggers a refetch.
	DefaultRetention = 7 * 24 * time.Hour

	// ConfigFileName is the optional configuration file searched in the
	// working directory.
	ConfigFileName = "panid.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
