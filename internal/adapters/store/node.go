package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.panid.dev/panid/internal/adapters/config"
	"go.panid.dev/panid/internal/core/domain"
	"go.panid.dev/panid/internal/core/ports"
)

const NodeID graft.ID = "adapter.mapping_store"

func init() {
	graft.Register(graft.Node[ports.MappingStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.MappingStore, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings.CacheDir)
		},
	})
}
