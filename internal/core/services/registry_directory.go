package services

import (
	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driven"
)

// RegistryDirectory is the ordered list of configured mapping registries.
// Order matters: fallbacks pick the first registry with a capability.
type RegistryDirectory struct {
	registries []driven.Registry
}

// NewRegistryDirectory creates a directory over the given registries.
func NewRegistryDirectory(registries ...driven.Registry) *RegistryDirectory {
	return &RegistryDirectory{registries: append([]driven.Registry(nil), registries...)}
}

// All returns all registries in configuration order.
func (d *RegistryDirectory) All() []driven.Registry {
	return append([]driven.Registry(nil), d.registries...)
}

// Descriptions returns the domain descriptions of all registries.
func (d *RegistryDirectory) Descriptions() []domain.Registry {
	out := make([]domain.Registry, len(d.registries))
	for i, r := range d.registries {
		out[i] = r.Registry
	}
	return out
}

// ByURI returns the registry with the given URI.
func (d *RegistryDirectory) ByURI(uri string) (driven.Registry, bool) {
	for _, r := range d.registries {
		if domain.SameURI(r.URI, uri) {
			return r, true
		}
	}
	return driven.Registry{}, false
}

// FirstWith returns the first registry that has the capability.
func (d *RegistryDirectory) FirstWith(want domain.RegistryCapability) (driven.Registry, bool) {
	for _, r := range d.registries {
		if r.Can(want) {
			return r, true
		}
	}
	return driven.Registry{}, false
}

// Home returns the registry matching current, or else the first registry
// with the fallback capability.
func (d *RegistryDirectory) Home(current *domain.Registry, fallback domain.RegistryCapability) (driven.Registry, bool) {
	for _, r := range d.registries {
		if r.Is(current) {
			return r, true
		}
	}
	return d.FirstWith(fallback)
}

// Filter returns the registries accepted by keep, in order.
func (d *RegistryDirectory) Filter(keep func(domain.Registry) bool) []driven.Registry {
	var out []driven.Registry
	for _, r := range d.registries {
		if keep(r.Registry) {
			out = append(out, r)
		}
	}
	return out
}
