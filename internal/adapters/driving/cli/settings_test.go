package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/skosmap/internal/core/domain"
)

func TestSettingsShow(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "", "settings", "show")

	require.NoError(t, err)
	for _, key := range domain.AllSettingKeys() {
		assert.Contains(t, out, string(key))
	}
	assert.Contains(t, out, "(unset)")
}

func TestSettingsSetAndShow(t *testing.T) {
	ts := setupServices(t)

	out, err := execute(t, "", "settings", "set", "creator", "Jane")
	require.NoError(t, err)
	assert.Contains(t, out, "Set creator")
	assert.Equal(t, "Jane", ts.settings.Get().Creator)

	_, err = execute(t, "", "settings", "set", "mapping_editor_clear_on_save", "false")
	require.NoError(t, err)
	assert.False(t, ts.settings.Get().MappingEditorClearOnSave)

	out, err = execute(t, "", "settings", "show", "--json")
	require.NoError(t, err)
	var decoded domain.EditorSettings
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Jane", decoded.Creator)
}

func TestSettingsSet_Invalid(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "", "settings", "set", "no_such_key", "1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "", "settings", "set", "auto_insert_labels", "maybe")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCreator(t *testing.T) {
	ts := setupServices(t)

	out, err := execute(t, "", "settings", "creator")
	require.NoError(t, err)
	assert.Contains(t, out, "(not set)")

	require.NoError(t, ts.settings.Set(domain.SettingCreator, "Jane"))
	require.NoError(t, ts.settings.Set(domain.SettingCreatorURL, "example.org/jane"))

	out, err = execute(t, "", "settings", "creator")
	require.NoError(t, err)
	assert.Contains(t, out, "Name: Jane")
	assert.Contains(t, out, "URL:  http://example.org/jane")
}

func TestJSONFieldName_CoversAllKeys(t *testing.T) {
	data, err := json.Marshal(domain.DefaultEditorSettings())
	require.NoError(t, err)
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))

	for _, key := range domain.AllSettingKeys() {
		_, ok := fields[jsonFieldName(key)]
		assert.True(t, ok, "no JSON field for %s", key)
	}
}
