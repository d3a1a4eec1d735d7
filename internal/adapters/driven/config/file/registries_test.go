package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/skosmap/internal/core/domain"
)

const registriesTOML = `
[editor]
locale = "de"

[[registries]]
uri = "http://ex.org/registries/local"
name = "Local"
type = "local"
capabilities = ["mappings", "save", "remove"]

[[registries]]
uri = "http://ex.org/registries/api"
name = "Concordance API"
type = "jskos-api"
base_url = "https://api.ex.org/"
token = "secret"
capabilities = ["mappings", "occurrences"]
requests_per_second = 2.5
`

func TestConfigStore_Registries(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(registriesTOML), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	registries := store.Registries()
	require.Len(t, registries, 2)
	assert.Equal(t, domain.RegistryConfig{
		URI:          "http://ex.org/registries/local",
		Name:         "Local",
		Type:         domain.RegistryTypeLocal,
		Capabilities: []string{"mappings", "save", "remove"},
	}, registries[0])
	assert.Equal(t, "https://api.ex.org/", registries[1].BaseURL)
	assert.Equal(t, "secret", registries[1].Token)
	assert.InDelta(t, 2.5, registries[1].RequestsPerSecond, 0.0001)
	assert.Equal(t, "de", value(store, "editor.locale"))
}

func TestConfigStore_Registries_SurviveSave(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(registriesTOML), 0600))
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("editor.creator", "Jane"))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Len(t, reloaded.Registries(), 2)
	assert.Equal(t, "Jane", value(reloaded, "editor.creator"))
}

func TestDecodeRegistries_RequiresURI(t *testing.T) {
	_, err := decodeRegistries([]byte("[[registries]]\nname = \"nameless\"\n"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
