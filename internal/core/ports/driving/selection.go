package driving

import "github.com/custodia-labs/skosmap/internal/core/domain"

// SelectionService tracks the selected scheme and concept per side.
type SelectionService interface {
	// Set stores a selection; kind SelectBoth sets scheme and concept together.
	Set(kind domain.SelectionKind, isLeft bool, scheme *domain.Scheme, concept *domain.Concept)

	// Clear unsets a selection; clearing a scheme clears the concept too.
	Clear(kind domain.SelectionKind, isLeft bool)

	// Scheme returns the selected scheme of a side.
	Scheme(isLeft bool) *domain.Scheme

	// Concept returns the selected concept of a side.
	Concept(isLeft bool) *domain.Concept

	// Snapshot returns a copy of the whole selection.
	Snapshot() domain.Selection
}
