package services

import (
	"context"
	"fmt"
	"reflect"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driven"
	"github.com/custodia-labs/skosmap/internal/core/ports/driving"
	"github.com/custodia-labs/skosmap/internal/logger"
)

// GetMappings queries the selected registries concurrently and returns the
// union of their results in registry order.
//
// Registry selection:
//   - OnlyFromMain: the home registry, or the first save-capable one.
//   - Registry: the registry with that URI.
//   - otherwise every registry offering mappings, plus those offering
//     occurrences when All is set.
//
// Any provider failure fails the whole lookup.
func (s *MappingService) GetMappings(ctx context.Context, opts driving.GetMappingsOptions) ([]domain.Mapping, error) {
	home := s.MappingRegistry()

	var targets []driven.Registry
	switch {
	case opts.OnlyFromMain:
		if reg, ok := s.registries.Home(home, domain.CapSaveMappings); ok {
			targets = []driven.Registry{reg}
		}
	case opts.Registry != "":
		if reg, ok := s.registries.ByURI(opts.Registry); ok {
			targets = []driven.Registry{reg}
		}
	default:
		targets = s.registries.Filter(func(r domain.Registry) bool {
			return r.Can(domain.CapMappings) || (opts.All && r.Can(domain.CapOccurrences))
		})
	}

	logger.Section("Mapping Lookup")
	logger.Debug("querying %d registries (all=%t)", len(targets), opts.All)

	results := make([][]domain.Mapping, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	for i, reg := range targets {
		if reg.Provider == nil {
			logger.Warn("registry %s has no provider, skipping", reg.URI)
			continue
		}
		g.Go(func() error {
			var (
				found []domain.Mapping
				err   error
			)
			if opts.All {
				found, err = reg.Provider.GetAllMappings(gctx, opts.Query)
			} else {
				query := opts.Query
				query.Selected = nil
				found, err = reg.Provider.GetMappings(gctx, query)
			}
			if err != nil {
				return fmt.Errorf("get mappings from %s: %w", reg.URI, err)
			}
			logger.Debug("registry %s returned %d mappings", reg.URI, len(found))
			results[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return unionMappings(results...), nil
}

// SaveMappings saves mappings to the registry with registryURI, or else to
// the home registry, or else to the first save-capable registry. When no
// capable registry can be determined a warning is logged and nothing is saved.
func (s *MappingService) SaveMappings(ctx context.Context, mappings []domain.Mapping, registryURI string) ([]domain.Mapping, error) {
	reg, ok := s.resolveRegistry(registryURI, domain.CapSaveMappings)
	if !ok {
		logger.Warn("tried to save mappings, but could not determine a registry")
		return []domain.Mapping{}, nil
	}

	logger.Debug("saving %d mappings to %s", len(mappings), reg.URI)
	saved, err := reg.Provider.SaveMappings(ctx, mappings)
	if err != nil {
		return nil, fmt.Errorf("save mappings to %s: %w", reg.URI, err)
	}
	return saved, nil
}

// RemoveMappings removes mappings from a remove-capable registry, resolved
// like SaveMappings. If the original snapshot was among the removed
// mappings, it is cleared.
func (s *MappingService) RemoveMappings(ctx context.Context, mappings []domain.Mapping, registryURI string) ([]domain.Mapping, error) {
	reg, ok := s.resolveRegistry(registryURI, domain.CapRemoveMappings)
	if !ok {
		logger.Warn("tried to remove mappings, but could not determine a registry")
		return []domain.Mapping{}, nil
	}

	logger.Debug("removing %d mappings from %s", len(mappings), reg.URI)
	removed, err := reg.Provider.RemoveMappings(ctx, mappings)
	if err != nil {
		return nil, fmt.Errorf("remove mappings from %s: %w", reg.URI, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.original != nil {
		for _, m := range removed {
			if reflect.DeepEqual(snapshot(m), *s.original) {
				s.original = nil
				break
			}
		}
	}
	return removed, nil
}

// SaveCurrent saves the working mapping and adopts the stored record as both
// working mapping and original. The target registry becomes the home
// registry and is flagged for refresh. Returns nil when nothing was saved.
func (s *MappingService) SaveCurrent(ctx context.Context, registryURI string) (*domain.Mapping, error) {
	reg, ok := s.resolveRegistry(registryURI, domain.CapSaveMappings)
	if !ok {
		logger.Warn("tried to save the current mapping, but could not determine a registry")
		return nil, nil
	}

	s.SetIdentifier()
	current := s.Mapping()

	saved, err := s.SaveMappings(ctx, []domain.Mapping{current}, reg.URI)
	if err != nil {
		return nil, err
	}
	if len(saved) == 0 {
		return nil, nil
	}

	stored := saved[0]
	s.Set(&stored, &stored)
	s.SetMappingRegistry(&reg.Registry)
	s.SetRefresh(true, reg.URI, false)
	return &stored, nil
}

// resolveRegistry picks the registry for a write. The chosen registry must
// have want and a provider.
func (s *MappingService) resolveRegistry(registryURI string, want domain.RegistryCapability) (driven.Registry, bool) {
	var (
		reg driven.Registry
		ok  bool
	)
	if registryURI != "" {
		reg, ok = s.registries.ByURI(registryURI)
	} else {
		reg, ok = s.registries.Home(s.MappingRegistry(), want)
	}
	if !ok || reg.Provider == nil || !reg.Can(want) {
		return driven.Registry{}, false
	}
	return reg, true
}

// unionMappings concatenates result lists, dropping mappings already seen.
// Mappings are keyed by URI, or by content identifier when they have none.
func unionMappings(results ...[]domain.Mapping) []domain.Mapping {
	seen := make(map[string]bool)
	out := []domain.Mapping{}
	for _, list := range results {
		for _, m := range list {
			key := m.URI
			if key == "" {
				key = domain.ContentIdentifier(m)
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, m)
		}
	}
	return out
}

// LoadMapping fetches the mapping with the given URI and makes it the
// working mapping, recording the registry it came from. Registries are
// asked in order until one returns it.
func (s *MappingService) LoadMapping(ctx context.Context, uri, registryURI string) (*domain.Mapping, error) {
	if uri == "" {
		return nil, fmt.Errorf("%w: mapping URI is empty", domain.ErrInvalidInput)
	}

	var candidates []driven.Registry
	if registryURI != "" {
		if reg, ok := s.registries.ByURI(registryURI); ok {
			candidates = []driven.Registry{reg}
		}
	} else {
		candidates = s.registries.Filter(func(r domain.Registry) bool {
			return r.Can(domain.CapMappings)
		})
	}

	for _, reg := range candidates {
		if reg.Provider == nil {
			continue
		}
		found, err := reg.Provider.GetMappings(ctx, domain.MappingQuery{Identifier: uri})
		if err != nil {
			return nil, fmt.Errorf("load mapping from %s: %w", reg.URI, err)
		}
		for _, m := range found {
			if m.URI != uri {
				continue
			}
			s.Set(&m, &m)
			s.SetMappingRegistry(&reg.Registry)
			loaded := s.Mapping()
			return &loaded, nil
		}
	}
	return nil, fmt.Errorf("%w: mapping %s", domain.ErrNotFound, uri)
}
