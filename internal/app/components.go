package app

import (
	"go.panid.dev/panid/internal/core/domain"
	"go.panid.dev/panid/internal/core/ports"
)

// Components bundles the wired application objects the CLI layer needs.
type Components struct {
	App      *App
	Logger   ports.Logger
	Progress ports.Progress
	Settings *domain.Settings
}
