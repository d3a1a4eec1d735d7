package file

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/skosmap/internal/core/domain"
)

// registryEntry is one [[registries]] table.
type registryEntry struct {
	URI               string   `toml:"uri"`
	Name              string   `toml:"name"`
	Type              string   `toml:"type"`
	BaseURL           string   `toml:"base_url"`
	Token             string   `toml:"token"`
	Capabilities      []string `toml:"capabilities"`
	RequestsPerSecond float64  `toml:"requests_per_second"`
}

type registryFile struct {
	Registries []registryEntry `toml:"registries"`
}

// decodeRegistries reads the [[registries]] tables of a config file.
// Entries without a URI are rejected.
func decodeRegistries(data []byte) ([]domain.RegistryConfig, error) {
	var file registryFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	out := make([]domain.RegistryConfig, 0, len(file.Registries))
	for i, entry := range file.Registries {
		if entry.URI == "" {
			return nil, fmt.Errorf("%w: registry %d has no uri", domain.ErrInvalidInput, i+1)
		}
		out = append(out, domain.RegistryConfig{
			URI:               entry.URI,
			Name:              entry.Name,
			Type:              entry.Type,
			BaseURL:           entry.BaseURL,
			Token:             entry.Token,
			Capabilities:      entry.Capabilities,
			RequestsPerSecond: entry.RequestsPerSecond,
		})
	}
	return out, nil
}
