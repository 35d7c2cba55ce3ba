package convert

import (
	"context"

	"github.com/grindlemire/graft"
	"go.panid.dev/panid/internal/adapters/logger"
	"go.panid.dev/panid/internal/core/ports"
	"go.panid.dev/panid/internal/engine/resolve"
)

const NodeID graft.ID = "engine.converter"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolve.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			source, err := graft.Dep[ports.MappingSource](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(source, log), nil
		},
	})
}
