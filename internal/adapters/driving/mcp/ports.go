package mcp

import (
	"github.com/custodia-labs/skosmap/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Editor owns the working mapping and registry actions.
	Editor driving.MappingEditor

	// Commands applies editor command lines.
	Commands driving.CommandRunner

	// Settings supplies the display language and creator; optional.
	Settings driving.SettingsService
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
