package resolve

import (
	"context"

	"github.com/grindlemire/graft"
	"go.panid.dev/panid/internal/adapters/biomart"
	"go.panid.dev/panid/internal/adapters/config"
	"go.panid.dev/panid/internal/adapters/logger"
	"go.panid.dev/panid/internal/adapters/store"
	"go.panid.dev/panid/internal/adapters/telemetry"
	"go.panid.dev/panid/internal/core/domain"
	"go.panid.dev/panid/internal/core/ports"
)

const NodeID graft.ID = "engine.cache_manager"

func init() {
	graft.Register(graft.Node[ports.MappingSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			store.NodeID,
			biomart.NodeID,
			telemetry.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (ports.MappingSource, error) {
			st, err := graft.Dep[ports.MappingStore](ctx)
			if err != nil {
				return nil, err
			}
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			progress, err := graft.Dep[ports.Progress](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(st, fetcher, progress, log, settings), nil
		},
	})
}
