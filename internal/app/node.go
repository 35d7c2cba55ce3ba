package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.panid.dev/panid/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.panid.dev/panid/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.panid.dev/panid/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.panid.dev/panid/internal/adapters/tabular"   //nolint:depguard // Wired in app layer
	"go.panid.dev/panid/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.panid.dev/panid/internal/core/domain"
	"go.panid.dev/panid/internal/core/ports"
	"go.panid.dev/panid/internal/engine/convert"
	"go.panid.dev/panid/internal/engine/resolve"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			tabular.NodeID,
			convert.NodeID,
			resolve.NodeID,
			store.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	codec, err := graft.Dep[ports.TableCodec](ctx)
	if err != nil {
		return nil, err
	}
	engine, err := graft.Dep[*convert.Engine](ctx)
	if err != nil {
		return nil, err
	}
	source, err := graft.Dep[ports.MappingSource](ctx)
	if err != nil {
		return nil, err
	}
	st, err := graft.Dep[ports.MappingStore](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(codec, engine, source, st, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	progress, err := graft.Dep[ports.Progress](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{
		App:      a,
		Logger:   log,
		Progress: progress,
		Settings: settings,
	}, nil
}
