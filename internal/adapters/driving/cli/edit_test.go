package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/skosmap/internal/core/domain"
)

func TestEdit_CreateAndSave(t *testing.T) {
	ts := setupServices(t)
	require.NoError(t, ts.settings.Load())
	require.NoError(t, ts.settings.Set(domain.SettingCreator, "Jane"))
	require.NoError(t, ts.settings.Set(domain.SettingMappingEditorClearOnSave, false))

	stdin := strings.Join([]string{
		"# build a mapping",
		"add left http://ex.org/ddc/612 http://ex.org/ddc",
		"add right http://ex.org/rvk/WW http://ex.org/rvk",
		"type close",
		"save",
		"quit",
		"switch",
	}, "\n")

	out, err := execute(t, stdin, "edit")

	require.NoError(t, err)
	assert.Contains(t, out, "--close-->")
	assert.Contains(t, out, "Saved urn:uuid:")

	m := ts.editor.Mapping()
	assert.NotEmpty(t, m.URI)
	require.Len(t, m.Creator, 1)
	assert.Equal(t, "Jane", m.Creator[0].PrefLabel["en"])
	assert.Equal(t, "http://ex.org/ddc/612", m.From.MemberSet[0].URI, "lines after quit are not run")
}

func TestEdit_ClearOnSave(t *testing.T) {
	ts := setupServices(t)

	stdin := "add left http://ex.org/ddc/612 http://ex.org/ddc\nsave\n"
	out, err := execute(t, stdin, "edit")

	require.NoError(t, err)
	assert.Contains(t, out, "Saved ")
	assert.Empty(t, ts.editor.Concepts(true))
}

func TestEdit_ErrorsAndHelp(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "bogus\nhelp\n", "edit")

	require.NoError(t, err)
	assert.Contains(t, out, "error: ")
	assert.Contains(t, out, "identifier")
}

func TestEdit_LoadsMapping(t *testing.T) {
	ts := setupServices(t)
	saved := saveTestMapping(t, ts)

	out, err := execute(t, "", "edit", saved.URI)

	require.NoError(t, err)
	assert.Contains(t, out, "--exact-->")
	assert.Equal(t, saved.URI, ts.editor.Mapping().URI)
}

func TestEdit_LoadMissing(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "", "edit", "urn:uuid:missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
