package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.panid.dev/panid/internal/core/domain"
)

const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*domain.Settings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*domain.Settings, error) {
			return Load()
		},
	})
}
