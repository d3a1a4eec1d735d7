package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/skosmap/internal/core/domain"
)

func newTestDirectory() *RegistryDirectory {
	return NewRegistryDirectory(
		testRegistry("urn:r:read", domain.CapMappings, &mockProvider{}),
		testRegistry("urn:r:save", domain.CapMappings|domain.CapSaveMappings, &mockProvider{}),
		testRegistry("urn:r:all", domain.CapMappings|domain.CapSaveMappings|domain.CapRemoveMappings, &mockProvider{}),
	)
}

func TestRegistryDirectory_All(t *testing.T) {
	dir := newTestDirectory()

	all := dir.All()
	assert.Len(t, all, 3)

	all[0] = testRegistry("urn:other", domain.CapNone, nil)
	assert.Equal(t, "urn:r:read", dir.All()[0].URI)
}

func TestRegistryDirectory_Descriptions(t *testing.T) {
	descriptions := newTestDirectory().Descriptions()

	uris := make([]string, len(descriptions))
	for i, d := range descriptions {
		uris[i] = d.URI
	}
	assert.Equal(t, []string{"urn:r:read", "urn:r:save", "urn:r:all"}, uris)
}

func TestRegistryDirectory_ByURI(t *testing.T) {
	dir := newTestDirectory()

	r, ok := dir.ByURI("urn:r:save")
	assert.True(t, ok)
	assert.Equal(t, "urn:r:save", r.URI)

	_, ok = dir.ByURI("urn:missing")
	assert.False(t, ok)

	_, ok = dir.ByURI("")
	assert.False(t, ok)
}

func TestRegistryDirectory_FirstWith(t *testing.T) {
	dir := newTestDirectory()

	tests := []struct {
		name   string
		want   domain.RegistryCapability
		uri    string
		exists bool
	}{
		{name: "mappings", want: domain.CapMappings, uri: "urn:r:read", exists: true},
		{name: "save", want: domain.CapSaveMappings, uri: "urn:r:save", exists: true},
		{name: "remove", want: domain.CapRemoveMappings, uri: "urn:r:all", exists: true},
		{name: "occurrences", want: domain.CapOccurrences},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := dir.FirstWith(tt.want)
			assert.Equal(t, tt.exists, ok)
			if tt.exists {
				assert.Equal(t, tt.uri, r.URI)
			}
		})
	}
}

func TestRegistryDirectory_Home(t *testing.T) {
	dir := newTestDirectory()

	r, ok := dir.Home(&domain.Registry{URI: "urn:r:read"}, domain.CapSaveMappings)
	assert.True(t, ok)
	assert.Equal(t, "urn:r:read", r.URI, "current registry wins even without the capability")

	r, ok = dir.Home(nil, domain.CapSaveMappings)
	assert.True(t, ok)
	assert.Equal(t, "urn:r:save", r.URI)

	r, ok = dir.Home(&domain.Registry{URI: "urn:gone"}, domain.CapRemoveMappings)
	assert.True(t, ok)
	assert.Equal(t, "urn:r:all", r.URI)

	_, ok = NewRegistryDirectory().Home(nil, domain.CapMappings)
	assert.False(t, ok)
}

func TestRegistryDirectory_Filter(t *testing.T) {
	dir := newTestDirectory()

	savers := dir.Filter(func(r domain.Registry) bool {
		return r.Can(domain.CapSaveMappings)
	})

	assert.Len(t, savers, 2)
	assert.Equal(t, "urn:r:save", savers[0].URI)
	assert.Equal(t, "urn:r:all", savers[1].URI)
	assert.Empty(t, dir.Filter(func(domain.Registry) bool { return false }))
}
