package ports

import (
	"context"

	"go.panid.dev/panid/internal/core/domain"
)

// Fetcher retrieves a fresh mapping table for a pair of identifier types
// from the remote annotation source.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch downloads the mapping for the given pair. The call is bounded
	// by the client's network timeout; failures surface as
	// domain.ErrFetchFailed with a human-readable cause.
	Fetch(ctx context.Context, a, b domain.IDType) (*domain.Mapping, error)
}
