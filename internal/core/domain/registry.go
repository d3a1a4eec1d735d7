package domain

import (
	"fmt"
	"strings"
)

// RegistryCapability represents what a mapping registry can do.
// This is a bitfield allowing registries to declare several capabilities.
type RegistryCapability uint8

const (
	// CapNone indicates the registry offers nothing mapping related.
	CapNone RegistryCapability = 0
	// CapMappings indicates the registry can be queried for mappings.
	CapMappings RegistryCapability = 1 << 0
	// CapOccurrences indicates the registry can report concept occurrences.
	CapOccurrences RegistryCapability = 1 << 1
	// CapSaveMappings indicates the registry accepts new or updated mappings.
	CapSaveMappings RegistryCapability = 1 << 2
	// CapRemoveMappings indicates the registry can delete mappings.
	CapRemoveMappings RegistryCapability = 1 << 3
)

var capabilityNames = []struct {
	name string
	cap  RegistryCapability
}{
	{"mappings", CapMappings},
	{"occurrences", CapOccurrences},
	{"save", CapSaveMappings},
	{"remove", CapRemoveMappings},
}

// Has reports whether every capability in want is present.
func (c RegistryCapability) Has(want RegistryCapability) bool {
	return c&want == want
}

// String returns a comma separated list of capability names.
func (c RegistryCapability) String() string {
	if c == CapNone {
		return "none"
	}
	var parts []string
	for _, n := range capabilityNames {
		if c.Has(n.cap) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, ",")
}

// ParseCapabilities converts capability names into a bitfield.
func ParseCapabilities(names []string) (RegistryCapability, error) {
	caps := CapNone
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		found := false
		for _, n := range capabilityNames {
			if n.name == name {
				caps |= n.cap
				found = true
				break
			}
		}
		if !found {
			return CapNone, fmt.Errorf("%w: capability %q", ErrUnsupportedType, raw)
		}
	}
	return caps, nil
}

// Registry describes a data source or sink for mappings.
type Registry struct {
	// URI identifies the registry.
	URI string `json:"uri"`

	// PrefLabel is a display name per language.
	PrefLabel LanguageMap `json:"prefLabel,omitempty"`

	// Capabilities declares what the registry supports.
	Capabilities RegistryCapability `json:"-"`
}

// Is reports whether both registries share the same, non-empty URI.
func (r Registry) Is(other *Registry) bool {
	if other == nil {
		return false
	}
	return SameURI(r.URI, other.URI)
}

// Can reports whether the registry has the capability.
func (r Registry) Can(want RegistryCapability) bool {
	return r.Capabilities.Has(want)
}

// Registry provider types.
const (
	RegistryTypeLocal    = "local"
	RegistryTypeJSKOSAPI = "jskos-api"
)

// RegistryConfig describes a configured registry before its provider is built.
type RegistryConfig struct {
	URI  string
	Name string

	// Type selects the provider: RegistryTypeLocal or RegistryTypeJSKOSAPI.
	Type string

	// BaseURL is the API root of a remote registry.
	BaseURL string

	// Token is an optional bearer token for remote writes.
	Token string

	// Capabilities lists capability names; see ParseCapabilities.
	Capabilities []string

	// RequestsPerSecond throttles remote calls; zero uses the provider default.
	RequestsPerSecond float64
}
