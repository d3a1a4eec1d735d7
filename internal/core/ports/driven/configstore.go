package driven

// ConfigStore holds the settings tree. Keys are dotted paths such as
// "editor.locale"; values come back in the shapes the backing format decodes
// to, so callers convert them themselves.
type ConfigStore interface {
	// Get returns the value at key and whether it is present.
	Get(key string) (any, bool)

	// Set writes value at key and persists the tree.
	Set(key string, value any) error

	// Delete removes key and persists the tree. Missing keys are ignored.
	Delete(key string) error

	// Save writes the whole tree to storage.
	Save() error

	// Load replaces the tree with what storage holds.
	Load() error

	// Path names the backing file.
	Path() string
}
