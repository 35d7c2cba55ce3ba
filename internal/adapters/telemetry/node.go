package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	progrockadapter "go.panid.dev/panid/internal/adapters/telemetry/progrock"
	"go.panid.dev/panid/internal/core/ports"
)

const NodeID graft.ID = "adapter.progress"

func init() {
	graft.Register(graft.Node[ports.Progress]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Progress, error) {
			return progrockadapter.New(), nil
		},
	})
}
