package tui

import "errors"

// ErrMissingMappingEditor is returned when the mapping editor is not provided.
var ErrMissingMappingEditor = errors.New("tui: mapping editor is required")

// ErrMissingCommandRunner is returned when the command runner is not provided.
var ErrMissingCommandRunner = errors.New("tui: command runner is required")
