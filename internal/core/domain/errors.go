package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidConversion is returned when a conversion string does not match the grammar.
	ErrInvalidConversion = zerr.New("invalid conversion string, expected format: column:type{+|>}column:type")

	// ErrUnknownIDType is returned when a type tag is not in the identifier type registry.
	ErrUnknownIDType = zerr.New("unknown identifier type")

	// ErrUnknownColumn is returned when a directive references a column absent from the working table.
	ErrUnknownColumn = zerr.New("column not found in table")

	// ErrUnresolvedMapping is returned when no mapping table can be produced for a type pair.
	ErrUnresolvedMapping = zerr.New("failed to resolve mapping table")

	// ErrFetchFailed is returned when the remote annotation source is unreachable or returned bad data.
	ErrFetchFailed = zerr.New("failed to fetch mapping data")

	// ErrCacheCorrupt is returned when an on-disk cache entry cannot be read back.
	ErrCacheCorrupt = zerr.New("cache entry is corrupt")

	// ErrStoreWriteFailed is returned when a cache entry cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache entry")

	// ErrStorePurgeFailed is returned when the cache directory cannot be cleaned.
	ErrStorePurgeFailed = zerr.New("failed to purge cache")

	// ErrTableReadFailed is returned when the input table cannot be parsed.
	ErrTableReadFailed = zerr.New("failed to read input table")

	// ErrTableWriteFailed is returned when the output table cannot be written.
	ErrTableWriteFailed = zerr.New("failed to write output table")

	// ErrConfigParse is returned when the configuration file is unreadable or invalid.
	ErrConfigParse = zerr.New("failed to parse configuration file")

	// ErrNoConversions is returned when no conversion strings are supplied.
	ErrNoConversions = zerr.New("no conversion strings specified")
)
