package driven

import (
	"context"

	"github.com/custodia-labs/skosmap/internal/core/domain"
)

// MappingProvider reads and writes the mappings held by one registry.
// Calls may block on I/O and must honour context cancellation.
type MappingProvider interface {
	// GetMappings returns mappings matching the query.
	GetMappings(ctx context.Context, query domain.MappingQuery) ([]domain.Mapping, error)

	// GetAllMappings returns mappings and occurrence based suggestions,
	// taking the query's selection into account.
	GetAllMappings(ctx context.Context, query domain.MappingQuery) ([]domain.Mapping, error)

	// SaveMappings creates or updates mappings and returns them as stored.
	SaveMappings(ctx context.Context, mappings []domain.Mapping) ([]domain.Mapping, error)

	// RemoveMappings deletes mappings and returns the removed records.
	RemoveMappings(ctx context.Context, mappings []domain.Mapping) ([]domain.Mapping, error)
}

// Registry pairs a registry description with the provider that serves it.
type Registry struct {
	domain.Registry

	// Provider performs the registry's mapping operations.
	Provider MappingProvider
}
