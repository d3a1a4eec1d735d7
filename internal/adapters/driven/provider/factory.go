// Package provider builds the registry directory from configuration.
package provider

import (
	"fmt"

	"github.com/custodia-labs/skosmap/internal/adapters/driven/provider/jskosapi"
	"github.com/custodia-labs/skosmap/internal/adapters/driven/provider/local"
	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driven"
)

// DefaultLocalURI identifies the built-in local registry.
const DefaultLocalURI = "urn:skosmap:registry:local"

// DefaultRegistries is used when no registries are configured.
func DefaultRegistries() []domain.RegistryConfig {
	return []domain.RegistryConfig{{
		URI:  DefaultLocalURI,
		Name: "Local",
		Type: domain.RegistryTypeLocal,
	}}
}

// Build creates a registry for each config, in order. Local registries share
// store. An empty config list yields DefaultRegistries.
func Build(configs []domain.RegistryConfig, store driven.MappingStore) ([]driven.Registry, error) {
	if len(configs) == 0 {
		configs = DefaultRegistries()
	}

	registries := make([]driven.Registry, 0, len(configs))
	for _, cfg := range configs {
		registry, err := build(cfg, store)
		if err != nil {
			return nil, fmt.Errorf("registry %s: %w", cfg.URI, err)
		}
		registries = append(registries, registry)
	}
	return registries, nil
}

func build(cfg domain.RegistryConfig, store driven.MappingStore) (driven.Registry, error) {
	kind := cfg.Type
	if kind == "" {
		kind = domain.RegistryTypeLocal
	}

	caps, err := domain.ParseCapabilities(cfg.Capabilities)
	if err != nil {
		return driven.Registry{}, err
	}
	if len(cfg.Capabilities) == 0 {
		caps = defaultCapabilities(kind, cfg.Token != "")
	}

	var mappingProvider driven.MappingProvider
	switch kind {
	case domain.RegistryTypeLocal:
		if store == nil {
			return driven.Registry{}, fmt.Errorf("%w: local registry needs a mapping store", domain.ErrInvalidInput)
		}
		mappingProvider = local.New(store)
	case domain.RegistryTypeJSKOSAPI:
		p, err := jskosapi.New(jskosapi.Config{
			BaseURL:           cfg.BaseURL,
			Token:             cfg.Token,
			RequestsPerSecond: cfg.RequestsPerSecond,
		})
		if err != nil {
			return driven.Registry{}, err
		}
		mappingProvider = p
	default:
		return driven.Registry{}, fmt.Errorf("%w: registry type %q", domain.ErrUnsupportedType, cfg.Type)
	}

	registry := domain.Registry{URI: cfg.URI, Capabilities: caps}
	if cfg.Name != "" {
		registry.PrefLabel = domain.LanguageMap{"en": cfg.Name}
	}
	return driven.Registry{Registry: registry, Provider: mappingProvider}, nil
}

// defaultCapabilities applies when a config lists none. Remote registries
// only accept writes when a token is configured.
func defaultCapabilities(kind string, hasToken bool) domain.RegistryCapability {
	switch kind {
	case domain.RegistryTypeLocal:
		return domain.CapMappings | domain.CapOccurrences | domain.CapSaveMappings | domain.CapRemoveMappings
	case domain.RegistryTypeJSKOSAPI:
		if hasToken {
			return domain.CapMappings | domain.CapSaveMappings | domain.CapRemoveMappings
		}
		return domain.CapMappings
	default:
		return domain.CapNone
	}
}
