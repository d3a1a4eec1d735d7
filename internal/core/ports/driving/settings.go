package driving

import "github.com/custodia-labs/skosmap/internal/core/domain"

// SettingsService manages the persisted editor settings.
type SettingsService interface {
	// Load merges persisted settings over the defaults.
	Load() error

	// Loaded reports whether Load has completed.
	Loaded() bool

	// Get returns the current settings.
	Get() domain.EditorSettings

	// Save replaces and persists all settings. Ignored before Load.
	Save(settings domain.EditorSettings) error

	// Set changes and persists one setting. Ignored before Load.
	Set(key domain.SettingKey, value any) error

	// Creator returns the agent described by the creator settings.
	Creator() domain.Agent

	// GetDefaults returns default settings.
	GetDefaults() domain.EditorSettings
}
