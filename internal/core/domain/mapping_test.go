package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMapping(t *testing.T) {
	m := NewMapping()

	assert.Empty(t, m.From.MemberSet)
	assert.NotNil(t, m.From.MemberSet)
	assert.Empty(t, m.To.MemberSet)
	assert.Nil(t, m.FromScheme)
	assert.Nil(t, m.ToScheme)
	assert.Equal(t, []string{DefaultMappingType}, m.Type)
}

func TestMapping_Added(t *testing.T) {
	s1 := NewScheme("s1")
	m := NewMapping()
	m.To.MemberSet = []Concept{NewConcept("c1", s1), NewConcept("c2", s1)}

	assert.True(t, m.Added(NewConcept("c2", nil), false))
	assert.False(t, m.Added(NewConcept("c2", nil), true))
	assert.False(t, m.Added(NewConcept("c3", nil), false))
	assert.False(t, m.Added(Concept{}, false), "empty URIs never match")
}

func TestMapping_CheckScheme(t *testing.T) {
	m := NewMapping()
	assert.True(t, m.CheckScheme(NewScheme("s1"), true), "unset scheme accepts anything")

	m.FromScheme = NewScheme("s1")
	assert.True(t, m.CheckScheme(NewScheme("s1"), true))
	assert.False(t, m.CheckScheme(NewScheme("s2"), true))
	assert.False(t, m.CheckScheme(nil, true))
	assert.True(t, m.CheckScheme(NewScheme("s2"), false))
}

func TestMapping_CanAdd(t *testing.T) {
	m := NewMapping()
	m.From.MemberSet = []Concept{NewConcept("c1", nil)}

	assert.False(t, m.CanAdd(Concept{}, true))
	assert.False(t, m.CanAdd(NewConcept("c1", nil), true))
	assert.True(t, m.CanAdd(NewConcept("c1", nil), false))
}

func TestMapping_PrimaryType(t *testing.T) {
	m := NewMapping()
	assert.Equal(t, DefaultMappingType, m.PrimaryType())

	m.Type = []string{MappingTypeExact, MappingTypeClose}
	assert.Equal(t, MappingTypeExact, m.PrimaryType())

	m.Type = nil
	assert.Equal(t, DefaultMappingType, m.PrimaryType())
}

func TestMapping_Clone(t *testing.T) {
	m := NewMapping()
	m.From.MemberSet = []Concept{NewConcept("c1", NewScheme("s1"))}
	m.FromScheme = NewScheme("s1")
	m.Note = LanguageMapList{"en": {"a note"}}
	m.Creator = []Agent{{PrefLabel: LanguageMap{"en": "Ada"}}}

	clone := m.Clone()
	require.Equal(t, m, clone)

	clone.From.MemberSet[0].URI = "changed"
	clone.FromScheme.URI = "changed"
	clone.Note["en"][0] = "changed"
	clone.Creator[0].PrefLabel["en"] = "changed"

	assert.Equal(t, "c1", m.From.MemberSet[0].URI)
	assert.Equal(t, "s1", m.FromScheme.URI)
	assert.Equal(t, "a note", m.Note["en"][0])
	assert.Equal(t, "Ada", m.Creator[0].PrefLabel["en"])
}

func TestMapping_Minify(t *testing.T) {
	scheme := &Scheme{Item: Item{URI: "s1", Notation: []string{"ddc"}, PrefLabel: LanguageMap{"en": "DDC"}}}
	concept := Concept{
		Item:     Item{URI: "c1", Notation: []string{"612"}, PrefLabel: LanguageMap{"en": "Physiology"}},
		InScheme: []Scheme{*scheme},
	}
	m := NewMapping()
	m.URI = "urn:uuid:1"
	m.From.MemberSet = []Concept{concept}
	m.FromScheme = scheme
	m.Local = true

	min := m.Minify()

	assert.Equal(t, "urn:uuid:1", min.URI)
	assert.Equal(t, []string{"612"}, min.From.MemberSet[0].Notation)
	assert.Nil(t, min.From.MemberSet[0].PrefLabel)
	assert.Nil(t, min.From.MemberSet[0].InScheme)
	assert.Nil(t, min.FromScheme.PrefLabel)
	assert.Equal(t, []string{"ddc"}, min.FromScheme.Notation)
	assert.False(t, min.Local)
	assert.NotNil(t, min.To.MemberSet)
}

func TestMapping_Members(t *testing.T) {
	m := NewMapping()
	m.From.MemberSet = []Concept{NewConcept("a", nil)}
	m.To.MemberSet = []Concept{NewConcept("b", nil), NewConcept("c", nil)}

	members := m.Members()
	require.Len(t, members, 3)
	assert.Equal(t, "a", members[0].URI)
	assert.Equal(t, "c", members[2].URI)
}

func TestMapping_JSON(t *testing.T) {
	m := NewMapping()
	m.From.MemberSet = []Concept{NewConcept("c1", NewScheme("s1"))}
	m.FromScheme = NewScheme("s1")
	m.Local = true

	data, err := json.Marshal(m)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"from":{"memberSet":[{"uri":"c1","inScheme":[{"uri":"s1"}]}]}`)
	assert.Contains(t, string(data), `"toScheme":null`)
	assert.NotContains(t, string(data), "Local")
	assert.NotContains(t, string(data), "note")
}

func TestMappingTypes(t *testing.T) {
	types := MappingTypes()
	assert.Equal(t, DefaultMappingType, types["mapping"])
	assert.Equal(t, MappingTypeExact, types["exact"])
	assert.Len(t, types, 6)
}

func TestConcept_PrimaryScheme(t *testing.T) {
	c := NewConcept("c1", nil)
	assert.Nil(t, c.PrimaryScheme())

	c.InScheme = []Scheme{*NewScheme("s1"), *NewScheme("s2")}
	primary := c.PrimaryScheme()
	require.NotNil(t, primary)
	assert.Equal(t, "s1", primary.URI)

	primary.URI = "changed"
	assert.Equal(t, "s1", c.InScheme[0].URI)
}

func TestSameScheme(t *testing.T) {
	assert.True(t, SameScheme(NewScheme("s1"), NewScheme("s1")))
	assert.False(t, SameScheme(NewScheme("s1"), NewScheme("s2")))
	assert.False(t, SameScheme(nil, NewScheme("s1")))
	assert.False(t, SameScheme(nil, nil))
	assert.False(t, SameScheme(NewScheme(""), NewScheme("")))
}

func TestLanguageMapList_Count(t *testing.T) {
	assert.Equal(t, 0, LanguageMapList(nil).Count())
	assert.Equal(t, 0, LanguageMapList{"en": {}, "de": nil}.Count())
	assert.Equal(t, 3, LanguageMapList{"en": {"a", "b"}, "de": {"c"}}.Count())
}

func TestAgent_IsEmpty(t *testing.T) {
	assert.True(t, Agent{}.IsEmpty())
	assert.True(t, Agent{PrefLabel: LanguageMap{"en": ""}}.IsEmpty())
	assert.False(t, Agent{PrefLabel: LanguageMap{"en": "Jane"}}.IsEmpty())
	assert.False(t, Agent{URI: "http://ex.org/jane"}.IsEmpty())
	assert.False(t, Agent{URL: "http://ex.org/~jane"}.IsEmpty())
}
