// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.panid.dev/panid/internal/adapters/biomart"
	_ "go.panid.dev/panid/internal/adapters/config"
	_ "go.panid.dev/panid/internal/adapters/logger"
	_ "go.panid.dev/panid/internal/adapters/store"
	_ "go.panid.dev/panid/internal/adapters/tabular"
	_ "go.panid.dev/panid/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.panid.dev/panid/internal/app"
	_ "go.panid.dev/panid/internal/engine/convert"
	_ "go.panid.dev/panid/internal/engine/resolve"
)
