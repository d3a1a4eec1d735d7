package services

import (
	"sync"

	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driving"
)

// Ensure SelectionService implements the interface.
var _ driving.SelectionService = (*SelectionService)(nil)

// SelectionService tracks which scheme and concept are selected on each side.
type SelectionService struct {
	mu        sync.RWMutex
	selection domain.Selection
}

// NewSelectionService creates an empty selection.
func NewSelectionService() *SelectionService {
	return &SelectionService{}
}

// Set stores a selection for a side.
func (s *SelectionService) Set(kind domain.SelectionKind, isLeft bool, scheme *domain.Scheme, concept *domain.Concept) {
	if !kind.IsValid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Set(kind, isLeft, scheme, concept)
}

// Clear unsets a selection. Clearing a scheme clears the concept too.
func (s *SelectionService) Clear(kind domain.SelectionKind, isLeft bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Clear(kind, isLeft)
}

// Scheme returns the selected scheme of a side.
func (s *SelectionService) Scheme(isLeft bool) *domain.Scheme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.Scheme(isLeft).Clone()
}

// Concept returns the selected concept of a side.
func (s *SelectionService) Concept(isLeft bool) *domain.Concept {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.selection.Concept(isLeft)
	if c == nil {
		return nil
	}
	out := c.Clone()
	return &out
}

// Snapshot returns a copy of the whole selection.
func (s *SelectionService) Snapshot() domain.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.Clone()
}
