package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/skosmap/internal/adapters/driven/provider/local"
	"github.com/custodia-labs/skosmap/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driven"
	"github.com/custodia-labs/skosmap/internal/core/services"
)

const testRegistryURI = "urn:test:local"

type testServices struct {
	editor    *services.MappingService
	settings  *services.SettingsService
	selection *services.SelectionService
}

// setupServices injects services over an in-memory local registry and
// resets them and all flag values after the test.
func setupServices(t *testing.T) *testServices {
	t.Helper()

	registry := driven.Registry{
		Registry: domain.Registry{
			URI:          testRegistryURI,
			PrefLabel:    domain.LanguageMap{"en": "Local"},
			Capabilities: domain.CapMappings | domain.CapSaveMappings | domain.CapRemoveMappings,
		},
		Provider: local.New(memory.NewMappingStore()),
	}
	ts := &testServices{
		editor:    services.NewMappingService(services.NewRegistryDirectory(registry)),
		settings:  services.NewSettingsService(memory.NewConfigStore()),
		selection: services.NewSelectionService(),
	}
	SetServices(&Services{
		Editor:    ts.editor,
		Commands:  ts.editor,
		Selection: ts.selection,
		Settings:  ts.settings,
	})
	t.Cleanup(func() {
		SetServices(nil)
		resetFlags()
	})
	return ts
}

func resetFlags() {
	verbose = false
	settingsJSON = false
	mappingsQuery = domain.MappingQuery{}
	mappingsDir = ""
	mappingsMode = ""
	mappingsRegistry = ""
	mappingsAll = false
	mappingsJSON = false
	editRegistry = ""
}

// execute runs the root command with args and stdin and returns everything
// written to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// saveTestMapping stores a DDC 612 to RVK WW mapping and returns it.
func saveTestMapping(t *testing.T, ts *testServices) *domain.Mapping {
	t.Helper()

	for _, line := range []string{
		"add left http://ex.org/ddc/612 http://ex.org/ddc",
		"add right http://ex.org/rvk/WW http://ex.org/rvk",
		"type exact",
	} {
		require.NoError(t, ts.editor.Run(t.Context(), line))
	}
	saved, err := ts.editor.SaveCurrent(t.Context(), "")
	require.NoError(t, err)
	require.NotNil(t, saved)
	ts.editor.Empty()
	return saved
}
