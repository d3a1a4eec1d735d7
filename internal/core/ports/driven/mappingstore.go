package driven

import (
	"context"

	"github.com/custodia-labs/skosmap/internal/core/domain"
)

// MappingStore persists mappings locally, keyed by mapping URI.
type MappingStore interface {
	// Save stores or updates a mapping. The mapping must have a URI.
	Save(ctx context.Context, mapping domain.Mapping) error

	// Get retrieves a mapping by URI.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, uri string) (*domain.Mapping, error)

	// Delete removes a mapping. Deleting a missing mapping is not an error.
	Delete(ctx context.Context, uri string) error

	// List returns all mappings in insertion order.
	List(ctx context.Context) ([]domain.Mapping, error)

	// Query returns mappings matching the query in insertion order.
	Query(ctx context.Context, query domain.MappingQuery) ([]domain.Mapping, error)
}
