package ports

import (
	"context"

	"go.panid.dev/panid/internal/core/domain"
)

// MappingSource supplies mapping tables to the conversion engine,
// refreshing them from the remote source when the cached copy is stale.
// Lookup is direction-agnostic: the returned mapping connects the two
// types in whichever orientation it was stored.
type MappingSource interface {
	Resolve(ctx context.Context, a, b domain.IDType) (*domain.Mapping, error)
}
