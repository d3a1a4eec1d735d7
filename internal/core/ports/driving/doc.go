// Package driving holds the interfaces the CLI, TUI and MCP adapters call
// into: the mapping editor, its command runner, the concept selection and
// the editor settings.
//
// internal/core/services provides the implementations.
package driving
