package tabular

import (
	"context"

	"github.com/grindlemire/graft"
	"go.panid.dev/panid/internal/core/ports"
)

const NodeID graft.ID = "adapter.table_codec"

func init() {
	graft.Register(graft.Node[ports.TableCodec]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.TableCodec, error) {
			return New(), nil
		},
	})
}
