// Package tui provides an interactive terminal editor for mappings.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"context"

	"github.com/custodia-labs/skosmap/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Editor owns the working mapping and registry actions.
	Editor driving.MappingEditor

	// Commands applies editor command lines.
	Commands driving.CommandRunner

	// Settings supplies the display language, creator and save behaviour.
	Settings driving.SettingsService

	// WatchSettings reports settings file changes; nil disables reloading.
	WatchSettings func(ctx context.Context) (<-chan struct{}, error)
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Editor == nil {
		return ErrMissingMappingEditor
	}
	if p.Commands == nil {
		return ErrMissingCommandRunner
	}
	return nil
}
