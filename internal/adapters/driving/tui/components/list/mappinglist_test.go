package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/skosmap/internal/core/domain"
)

func testMappings(n int) []domain.Mapping {
	out := make([]domain.Mapping, n)
	for i := range out {
		out[i] = domain.Mapping{
			URI: "urn:test:" + string(rune('a'+i)),
			From: domain.ConceptBundle{MemberSet: []domain.Concept{
				{Item: domain.Item{URI: "http://ex.org/a/" + string(rune('a'+i))}},
			}},
			To: domain.ConceptBundle{MemberSet: []domain.Concept{}},
		}
	}
	return out
}

func TestMappingList_Empty(t *testing.T) {
	l := NewMappingList(nil)

	_, ok := l.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, l.Len())
	assert.Contains(t, l.View(true), "No stored mappings")
}

func TestMappingList_Navigation(t *testing.T) {
	l := NewMappingList(nil)
	l.SetMappings(testMappings(3))

	l.MoveUp()
	assert.Equal(t, 0, l.SelectedIndex())

	l.MoveDown()
	l.MoveDown()
	l.MoveDown()
	assert.Equal(t, 2, l.SelectedIndex())

	selected, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "urn:test:c", selected.URI)
}

func TestMappingList_SetMappingsResetsSelection(t *testing.T) {
	l := NewMappingList(nil)
	l.SetMappings(testMappings(3))
	l.MoveDown()

	l.SetMappings(testMappings(2))

	assert.Equal(t, 0, l.SelectedIndex())
}

func TestMappingList_Scrolling(t *testing.T) {
	l := NewMappingList(nil)
	l.SetSize(80, 2)
	l.SetMappings(testMappings(5))

	for i := 0; i < 4; i++ {
		l.MoveDown()
	}
	view := l.View(true)

	assert.Contains(t, view, "5/5")
	assert.Contains(t, view, "http://ex.org/a/e")
	assert.NotContains(t, view, "http://ex.org/a/a")

	for i := 0; i < 4; i++ {
		l.MoveUp()
	}
	assert.Contains(t, l.View(true), "http://ex.org/a/a")
}

func TestMappingList_LocalMarker(t *testing.T) {
	l := NewMappingList(nil)
	mappings := testMappings(1)
	mappings[0].Local = true
	l.SetMappings(mappings)

	assert.Contains(t, l.View(false), "(local)")
}
