package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driven"
)

// Ensure MappingStore implements the interface.
var _ driven.MappingStore = (*MappingStore)(nil)

// MappingStore is an in-memory implementation of driven.MappingStore.
// Mappings are kept in insertion order; updates keep their position.
type MappingStore struct {
	mu       sync.RWMutex
	order    []string
	mappings map[string]domain.Mapping
}

// NewMappingStore creates a new in-memory mapping store.
func NewMappingStore() *MappingStore {
	return &MappingStore{
		mappings: make(map[string]domain.Mapping),
	}
}

// Save stores or updates a mapping.
func (s *MappingStore) Save(_ context.Context, mapping domain.Mapping) error {
	if mapping.URI == "" {
		return fmt.Errorf("%w: mapping has no URI", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.mappings[mapping.URI]; !ok {
		s.order = append(s.order, mapping.URI)
	}
	s.mappings[mapping.URI] = mapping.Clone()
	return nil
}

// Get retrieves a mapping by URI.
func (s *MappingStore) Get(_ context.Context, uri string) (*domain.Mapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mapping, ok := s.mappings[uri]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := mapping.Clone()
	return &out, nil
}

// Delete removes a mapping.
func (s *MappingStore) Delete(_ context.Context, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.mappings[uri]; !ok {
		return nil
	}
	delete(s.mappings, uri)
	for i, existing := range s.order {
		if existing == uri {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns all mappings in insertion order.
func (s *MappingStore) List(ctx context.Context) ([]domain.Mapping, error) {
	return s.Query(ctx, domain.MappingQuery{})
}

// Query returns the mappings matching the query in insertion order.
func (s *MappingStore) Query(_ context.Context, query domain.MappingQuery) ([]domain.Mapping, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Mapping, 0, len(s.order))
	for _, uri := range s.order {
		mapping := s.mappings[uri]
		if !query.Matches(mapping) {
			continue
		}
		result = append(result, mapping.Clone())
		if query.Limit > 0 && len(result) >= query.Limit {
			break
		}
	}
	return result, nil
}
