package biomart

import (
	"context"

	"github.com/grindlemire/graft"
	"go.panid.dev/panid/internal/adapters/config"
	"go.panid.dev/panid/internal/adapters/logger"
	"go.panid.dev/panid/internal/adapters/telemetry"
	"go.panid.dev/panid/internal/core/domain"
	"go.panid.dev/panid/internal/core/ports"
)

const NodeID graft.ID = "adapter.biomart_fetcher"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (ports.Fetcher, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
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
			return New(settings, progress, log), nil
		},
	})
}
