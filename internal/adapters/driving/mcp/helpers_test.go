package mcp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/skosmap/internal/adapters/driven/provider/local"
	"github.com/custodia-labs/skosmap/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driven"
	"github.com/custodia-labs/skosmap/internal/core/services"
)

const testRegistryURI = "urn:test:local"

// newTestServer wires a server to a mapping service over one in-memory
// local registry.
func newTestServer(t *testing.T) (*Server, *services.MappingService, *services.SettingsService) {
	t.Helper()

	registry := driven.Registry{
		Registry: domain.Registry{
			URI:          testRegistryURI,
			PrefLabel:    domain.LanguageMap{"en": "Local"},
			Capabilities: domain.CapMappings | domain.CapSaveMappings | domain.CapRemoveMappings,
		},
		Provider: local.New(memory.NewMappingStore()),
	}
	editor := services.NewMappingService(services.NewRegistryDirectory(registry))
	settings := services.NewSettingsService(memory.NewConfigStore())
	require.NoError(t, settings.Load())

	server, err := NewServer(&Ports{Editor: editor, Commands: editor, Settings: settings})
	require.NoError(t, err)
	return server, editor, settings
}
