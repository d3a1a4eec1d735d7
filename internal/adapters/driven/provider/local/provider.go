// Package local serves the local mapping registry from a driven.MappingStore.
package local

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driven"
	"github.com/custodia-labs/skosmap/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.MappingProvider = (*Provider)(nil)

// URIPrefix starts the URI of every mapping created locally.
const URIPrefix = "urn:uuid:"

// Provider reads and writes mappings kept in a local store.
// Every mapping it returns is marked Local.
type Provider struct {
	store driven.MappingStore
	now   func() time.Time
}

// New creates a provider over store.
func New(store driven.MappingStore) *Provider {
	return &Provider{store: store, now: time.Now}
}

// GetMappings returns stored mappings matching the query.
func (p *Provider) GetMappings(ctx context.Context, query domain.MappingQuery) ([]domain.Mapping, error) {
	mappings, err := p.store.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query local mappings: %w", err)
	}
	return markLocal(mappings), nil
}

// GetAllMappings falls back to the selected concepts when the query names
// none, matching them on either side.
func (p *Provider) GetAllMappings(ctx context.Context, query domain.MappingQuery) ([]domain.Mapping, error) {
	query = query.WithSelection()
	if query.From == "" && query.To == "" && query.Identifier == "" {
		return []domain.Mapping{}, nil
	}
	return p.GetMappings(ctx, query)
}

// SaveMappings stores mappings, assigning a URI to new ones and stamping
// created and modified times.
func (p *Provider) SaveMappings(ctx context.Context, mappings []domain.Mapping) ([]domain.Mapping, error) {
	now := p.now().UTC().Format(time.RFC3339)
	saved := make([]domain.Mapping, 0, len(mappings))

	for _, mapping := range mappings {
		stored := mapping.AddIdentifiers()
		if stored.URI == "" {
			stored.URI = URIPrefix + uuid.New().String()
			stored.Created = now
		} else if stored.Created == "" {
			stored.Created = now
		}
		stored.Modified = now
		stored.Local = false

		if err := p.store.Save(ctx, stored); err != nil {
			return nil, fmt.Errorf("save mapping %s: %w", stored.URI, err)
		}
		logger.Debug("saved local mapping %s", stored.URI)

		stored.Local = true
		saved = append(saved, stored)
	}
	return saved, nil
}

// RemoveMappings deletes stored mappings. Mappings that are not stored are
// skipped and left out of the result.
func (p *Provider) RemoveMappings(ctx context.Context, mappings []domain.Mapping) ([]domain.Mapping, error) {
	removed := make([]domain.Mapping, 0, len(mappings))

	for _, mapping := range mappings {
		if mapping.URI == "" {
			continue
		}
		existing, err := p.store.Get(ctx, mapping.URI)
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("local mapping %s not found, skipping removal", mapping.URI)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get mapping %s: %w", mapping.URI, err)
		}
		if err := p.store.Delete(ctx, mapping.URI); err != nil {
			return nil, fmt.Errorf("delete mapping %s: %w", mapping.URI, err)
		}
		existing.Local = true
		removed = append(removed, *existing)
	}
	return removed, nil
}

func markLocal(mappings []domain.Mapping) []domain.Mapping {
	out := make([]domain.Mapping, len(mappings))
	for i, m := range mappings {
		m.Local = true
		out[i] = m
	}
	return out
}
