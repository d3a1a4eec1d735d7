// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/skosmap/internal/core/domain"
)

// CommandApplied reports the outcome of an editor command line.
type CommandApplied struct {
	Line string
	Err  error
}

// MappingsLoaded carries the stored mappings of the current concepts.
type MappingsLoaded struct {
	Mappings []domain.Mapping
	Err      error
}

// MappingLoaded reports a mapping opened from the list.
type MappingLoaded struct {
	Mapping *domain.Mapping
	Err     error
}

// MappingSaved reports the outcome of saving the working mapping.
type MappingSaved struct {
	Mapping *domain.Mapping
	Err     error
}

// WatchStarted hands the settings change channel to the model.
type WatchStarted struct {
	Changes <-chan struct{}
}

// SettingsChanged is sent after the settings file changed on disk.
type SettingsChanged struct{}
