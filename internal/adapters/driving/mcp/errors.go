// Package mcp provides an MCP (Model Context Protocol) server adapter for skosmap.
// It lets AI assistants query registries and edit the working mapping.
package mcp

import "errors"

var (
	// ErrMissingMappingEditor is returned when the mapping editor is not provided.
	ErrMissingMappingEditor = errors.New("mcp: mapping editor is required")

	// ErrMissingCommandRunner is returned when the command runner is not provided.
	ErrMissingCommandRunner = errors.New("mcp: command runner is required")
)
