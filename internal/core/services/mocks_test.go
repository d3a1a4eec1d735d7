package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driven"
)

// mockProvider implements driven.MappingProvider for testing.
type mockProvider struct {
	mu sync.Mutex

	mappings    []domain.Mapping
	allMappings []domain.Mapping
	err         error

	queries    []domain.MappingQuery
	allQueries []domain.MappingQuery
	saved      []domain.Mapping
	removed    []domain.Mapping
}

func (m *mockProvider) GetMappings(_ context.Context, query domain.MappingQuery) ([]domain.Mapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.mappings, nil
}

func (m *mockProvider) GetAllMappings(_ context.Context, query domain.MappingQuery) ([]domain.Mapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.allQueries = append(m.allQueries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.allMappings, nil
}

func (m *mockProvider) SaveMappings(_ context.Context, mappings []domain.Mapping) ([]domain.Mapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Mapping, len(mappings))
	for i, mapping := range mappings {
		stored := mapping.Clone()
		if stored.URI == "" {
			stored.URI = "http://ex.org/mappings/" + string(rune('a'+len(m.saved)))
		}
		stored.Created = "2024-01-01T00:00:00Z"
		m.saved = append(m.saved, stored)
		out[i] = stored
	}
	return out, nil
}

func (m *mockProvider) RemoveMappings(_ context.Context, mappings []domain.Mapping) ([]domain.Mapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.removed = append(m.removed, mappings...)
	return mappings, nil
}

func testRegistry(uri string, caps domain.RegistryCapability, provider driven.MappingProvider) driven.Registry {
	return driven.Registry{
		Registry: domain.Registry{URI: uri, Capabilities: caps},
		Provider: provider,
	}
}
