package jskosapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driven"
	"github.com/custodia-labs/skosmap/internal/core/services"
)

// fakeRegistry is a minimal JSKOS API server keeping mappings in memory.
type fakeRegistry struct {
	mu       sync.Mutex
	server   *httptest.Server
	mappings map[string]domain.Mapping
	queries  []string
	requests []string
	auth     []string
	next     int
}

func newFakeRegistry(t *testing.T) *fakeRegistry {
	t.Helper()
	f := &fakeRegistry{mappings: map[string]domain.Mapping{}}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeRegistry) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auth = append(f.auth, r.Header.Get("Authorization"))
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/mappings":
		f.queries = append(f.queries, r.URL.RawQuery)
		out := []domain.Mapping{}
		for _, m := range f.mappings {
			if from := r.URL.Query().Get("from"); from == "" || domain.SameURI(m.From.MemberSet[0].URI, from) {
				out = append(out, m)
			}
		}
		_ = json.NewEncoder(w).Encode(out)
	case r.Method == http.MethodGet:
		m, ok := f.mappings[f.server.URL+r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(m)
	case r.Method == http.MethodPost && r.URL.Path == "/mappings":
		var m domain.Mapping
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.next++
		m.URI = f.server.URL + "/mappings/" + string(rune('0'+f.next))
		f.mappings[m.URI] = m
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(m)
	case r.Method == http.MethodPut:
		var m domain.Mapping
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		uri := f.server.URL + r.URL.Path
		if _, ok := f.mappings[uri]; !ok {
			http.NotFound(w, r)
			return
		}
		f.mappings[uri] = m
		_ = json.NewEncoder(w).Encode(m)
	case r.Method == http.MethodDelete:
		uri := f.server.URL + r.URL.Path
		if _, ok := f.mappings[uri]; !ok {
			http.NotFound(w, r)
			return
		}
		delete(f.mappings, uri)
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "unsupported", http.StatusMethodNotAllowed)
	}
}

func newMapping(from, to string) domain.Mapping {
	m := domain.NewMapping()
	m.From.MemberSet = []domain.Concept{domain.NewConcept(from, nil)}
	m.To.MemberSet = []domain.Concept{domain.NewConcept(to, nil)}
	return m
}

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	for _, base := range []string{"", "ftp://ex.org", "not a url", "http://"} {
		_, err := New(Config{BaseURL: base})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, base)
	}
}

func TestProvider_SaveGetRemove(t *testing.T) {
	ctx := context.Background()
	registry := newFakeRegistry(t)
	p, err := New(Config{BaseURL: registry.server.URL + "/"})
	require.NoError(t, err)

	saved, err := p.SaveMappings(ctx, []domain.Mapping{newMapping("c1", "d1"), newMapping("c2", "d2")})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.NotEmpty(t, saved[0].URI)
	assert.False(t, saved[0].Local)

	found, err := p.GetMappings(ctx, domain.MappingQuery{From: "c1", Direction: domain.DirectionForward, Limit: 5})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, saved[0].URI, found[0].URI)
	assert.Equal(t, "direction=forward&from=c1&limit=5", registry.queries[0])

	update := found[0]
	update.Type = []string{"http://www.w3.org/2004/02/skos/core#exactMatch"}
	updated, err := p.SaveMappings(ctx, []domain.Mapping{update})
	require.NoError(t, err)
	assert.Equal(t, update.Type, updated[0].Type)

	removed, err := p.RemoveMappings(ctx, []domain.Mapping{saved[0], saved[0], domain.NewMapping()})
	require.NoError(t, err)
	assert.Len(t, removed, 1)
}

func TestProvider_SaveMappings_ForeignURIs(t *testing.T) {
	tests := []struct {
		name string
		uri  func(foreign *fakeRegistry) string
	}{
		{"other registry", func(foreign *fakeRegistry) string { return foreign.server.URL + "/mappings/1" }},
		{"local mapping", func(*fakeRegistry) string { return "urn:uuid:1234" }},
		{"no URI", func(*fakeRegistry) string { return "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			own := newFakeRegistry(t)
			foreign := newFakeRegistry(t)
			p, err := New(Config{BaseURL: own.server.URL, Token: "secret"})
			require.NoError(t, err)

			mapping := newMapping("c1", "d1")
			mapping.URI = tt.uri(foreign)

			saved, err := p.SaveMappings(context.Background(), []domain.Mapping{mapping})

			require.NoError(t, err)
			require.Len(t, saved, 1)
			assert.Equal(t, own.server.URL+"/mappings/1", saved[0].URI)
			assert.Equal(t, []string{"POST /mappings"}, own.requests)
			assert.Empty(t, foreign.requests)
			assert.Equal(t, tt.uri(foreign), mapping.URI, "input must not be modified")
		})
	}
}

func TestProvider_RemoveMappings_SkipsForeignURIs(t *testing.T) {
	own := newFakeRegistry(t)
	foreign := newFakeRegistry(t)
	foreign.mappings[foreign.server.URL+"/mappings/1"] = newMapping("c1", "d1")
	p, err := New(Config{BaseURL: own.server.URL, Token: "secret"})
	require.NoError(t, err)

	removed, err := p.RemoveMappings(context.Background(), []domain.Mapping{
		{URI: foreign.server.URL + "/mappings/1"},
		{URI: "urn:uuid:1234"},
	})

	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.Empty(t, own.requests)
	assert.Empty(t, foreign.requests)
	assert.Len(t, foreign.mappings, 1)
}

func TestProvider_RemoveMappings_ReturnsStoredRecord(t *testing.T) {
	ctx := context.Background()
	registry := newFakeRegistry(t)
	p, err := New(Config{BaseURL: registry.server.URL})
	require.NoError(t, err)
	saved, err := p.SaveMappings(ctx, []domain.Mapping{newMapping("c1", "d1")})
	require.NoError(t, err)

	removed, err := p.RemoveMappings(ctx, []domain.Mapping{{URI: saved[0].URI}})

	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, saved[0], removed[0])
	assert.Empty(t, registry.mappings)
}

func TestProvider_RemovingLoadedMappingClearsOriginal(t *testing.T) {
	ctx := context.Background()
	registry := newFakeRegistry(t)
	p, err := New(Config{BaseURL: registry.server.URL})
	require.NoError(t, err)
	saved, err := p.SaveMappings(ctx, []domain.Mapping{newMapping("c1", "d1")})
	require.NoError(t, err)

	editor := services.NewMappingService(services.NewRegistryDirectory(driven.Registry{
		Registry: domain.Registry{
			URI:          "urn:test:remote",
			Capabilities: domain.CapMappings | domain.CapSaveMappings | domain.CapRemoveMappings,
		},
		Provider: p,
	}))
	_, err = editor.LoadMapping(ctx, saved[0].URI, "")
	require.NoError(t, err)
	require.NotNil(t, editor.Original())

	removed, err := editor.RemoveMappings(ctx, []domain.Mapping{{URI: saved[0].URI}}, "")

	require.NoError(t, err)
	assert.Len(t, removed, 1)
	assert.Nil(t, editor.Original())
}

func TestProvider_GetAllMappings(t *testing.T) {
	registry := newFakeRegistry(t)
	p, err := New(Config{BaseURL: registry.server.URL})
	require.NoError(t, err)

	result, err := p.GetAllMappings(context.Background(), domain.MappingQuery{})
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Empty(t, registry.queries)

	selected := &domain.Selection{}
	selected.Set(domain.SelectConcept, false, nil, &domain.Concept{Item: domain.Item{URI: "d1"}})
	_, err = p.GetAllMappings(context.Background(), domain.MappingQuery{Selected: selected})
	require.NoError(t, err)
	require.Len(t, registry.queries, 1)
	assert.Equal(t, "direction=both&mode=or&to=d1", registry.queries[0])
}

func TestProvider_SendsBearerToken(t *testing.T) {
	registry := newFakeRegistry(t)
	p, err := New(Config{BaseURL: registry.server.URL, Token: "secret"})
	require.NoError(t, err)

	_, err = p.GetMappings(context.Background(), domain.MappingQuery{})

	require.NoError(t, err)
	assert.Equal(t, []string{"Bearer secret"}, registry.auth)
}

func TestProvider_StatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"server error", http.StatusInternalServerError},
		{"forbidden", http.StatusForbidden},
		{"rate limited", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "nope", tt.status)
			}))
			defer server.Close()
			p, err := New(Config{BaseURL: server.URL})
			require.NoError(t, err)

			_, err = p.GetMappings(context.Background(), domain.MappingQuery{})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrRegistryUnavailable)
			assert.True(t, isStatus(err, tt.status))
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestProvider_CancelledContext(t *testing.T) {
	registry := newFakeRegistry(t)
	p, err := New(Config{BaseURL: registry.server.URL})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.GetMappings(ctx, domain.MappingQuery{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestQueryParams_OmitsEmpty(t *testing.T) {
	params := queryParams(domain.MappingQuery{FromScheme: "s1", Mode: domain.ModeAnd, Identifier: "a|b"})

	assert.Equal(t, "fromScheme=s1&identifier=a%7Cb&mode=and", params.Encode())
}
