package driving

import (
	"context"

	"github.com/custodia-labs/skosmap/internal/core/domain"
)

// GetMappingsOptions controls which registries a lookup fans out to.
type GetMappingsOptions struct {
	// Query is passed to every selected registry.
	Query domain.MappingQuery

	// Registry restricts the lookup to the registry with this URI.
	Registry string

	// OnlyFromMain restricts the lookup to the home registry of the
	// current mapping, falling back to the first save-capable registry.
	OnlyFromMain bool

	// All asks for mappings including occurrence based suggestions.
	All bool
}

// MappingEditor owns the single mapping being edited and the actions that
// exchange mappings with registries.
type MappingEditor interface {
	// Mapping returns a copy of the working mapping.
	Mapping() domain.Mapping

	// Original returns a copy of the minified source snapshot, or nil.
	Original() *domain.Mapping

	// Added reports whether a concept with the same URI is on the side.
	Added(concept domain.Concept, isLeft bool) bool

	// CheckScheme reports whether the scheme fits the side.
	CheckScheme(scheme *domain.Scheme, isLeft bool) bool

	// CanAdd reports whether the concept could be added to the side.
	CanAdd(concept domain.Concept, isLeft bool) bool

	// Concepts returns the concepts of one side.
	Concepts(isLeft bool) []domain.Concept

	// Scheme returns the scheme of one side, or nil.
	Scheme(isLeft bool) *domain.Scheme

	// Add puts a concept on a side, replacing the side when required.
	Add(concept domain.Concept, scheme *domain.Scheme, isLeft bool)

	// Remove takes a concept off a side.
	Remove(concept domain.Concept, isLeft bool)

	// RemoveAll clears the concepts and scheme of a side.
	RemoveAll(isLeft bool)

	// Set replaces the working mapping and/or the original snapshot.
	Set(mapping, original *domain.Mapping)

	// Empty resets the working mapping.
	Empty()

	// SetType replaces the mapping type.
	SetType(uri string)

	// SetCreator replaces the creators.
	SetCreator(creator []domain.Agent)

	// SetNote replaces the note; an empty note removes it.
	SetNote(note domain.LanguageMapList)

	// SetScheme sets the scheme of an empty side.
	SetScheme(isLeft bool, scheme *domain.Scheme)

	// Switch swaps both sides and their schemes.
	Switch()

	// SetIdentifier stamps identifiers once both schemes are set.
	SetIdentifier()

	// SetRefresh flags that mapping lists need reloading.
	SetRefresh(refresh bool, registryURI string, onlyMain bool)

	// RefreshState reports the refresh flag and the registry hint.
	RefreshState() (bool, string)

	// SetMappingRegistry records the home registry of the working mapping.
	SetMappingRegistry(registry *domain.Registry)

	// MappingRegistry returns the home registry, or nil.
	MappingRegistry() *domain.Registry

	// GetMappings queries one or more registries concurrently.
	GetMappings(ctx context.Context, opts GetMappingsOptions) ([]domain.Mapping, error)

	// SaveMappings saves mappings to a save-capable registry.
	SaveMappings(ctx context.Context, mappings []domain.Mapping, registryURI string) ([]domain.Mapping, error)

	// RemoveMappings removes mappings from a remove-capable registry.
	RemoveMappings(ctx context.Context, mappings []domain.Mapping, registryURI string) ([]domain.Mapping, error)

	// LoadMapping fetches a mapping by URI and makes it the working mapping.
	LoadMapping(ctx context.Context, uri, registryURI string) (*domain.Mapping, error)

	// SaveCurrent saves the working mapping and adopts the stored record.
	SaveCurrent(ctx context.Context, registryURI string) (*domain.Mapping, error)

	// Registries lists the configured registries.
	Registries() []domain.Registry
}
