package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/skosmap/internal/core/domain"
)

func testMapping(uri, from, to string) domain.Mapping {
	m := domain.NewMapping()
	m.URI = uri
	m.From.MemberSet = []domain.Concept{domain.NewConcept(from, domain.NewScheme("http://ex.org/s1"))}
	m.FromScheme = domain.NewScheme("http://ex.org/s1")
	m.To.MemberSet = []domain.Concept{domain.NewConcept(to, domain.NewScheme("http://ex.org/s2"))}
	m.ToScheme = domain.NewScheme("http://ex.org/s2")
	return m
}

func TestMappingStore_SaveAndGet(t *testing.T) {
	store := NewMappingStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testMapping("m1", "a", "b")))

	got, err := store.Get(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "a", got.From.MemberSet[0].URI)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMappingStore_Save_RequiresURI(t *testing.T) {
	store := NewMappingStore()

	err := store.Save(context.Background(), domain.NewMapping())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMappingStore_ListKeepsInsertionOrder(t *testing.T) {
	store := NewMappingStore()
	ctx := context.Background()
	for _, uri := range []string{"m3", "m1", "m2"} {
		require.NoError(t, store.Save(ctx, testMapping(uri, "a", "b")))
	}
	require.NoError(t, store.Save(ctx, testMapping("m1", "x", "y")))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "m3", list[0].URI)
	assert.Equal(t, "m1", list[1].URI)
	assert.Equal(t, "x", list[1].From.MemberSet[0].URI)
}

func TestMappingStore_Delete(t *testing.T) {
	store := NewMappingStore()
	ctx := context.Background()
	_ = store.Save(ctx, testMapping("m1", "a", "b"))
	_ = store.Save(ctx, testMapping("m2", "a", "c"))

	require.NoError(t, store.Delete(ctx, "m1"))
	require.NoError(t, store.Delete(ctx, "m1"))

	list, _ := store.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "m2", list[0].URI)
}

func TestMappingStore_Query(t *testing.T) {
	store := NewMappingStore()
	ctx := context.Background()
	_ = store.Save(ctx, testMapping("m1", "a", "b"))
	_ = store.Save(ctx, testMapping("m2", "a", "c"))
	_ = store.Save(ctx, testMapping("m3", "c", "a"))

	forward, err := store.Query(ctx, domain.MappingQuery{From: "a"})
	require.NoError(t, err)
	assert.Len(t, forward, 2)

	both, err := store.Query(ctx, domain.MappingQuery{From: "a", Direction: domain.DirectionBoth})
	require.NoError(t, err)
	assert.Len(t, both, 3)

	limited, err := store.Query(ctx, domain.MappingQuery{From: "a", Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "m1", limited[0].URI)
}

func TestMappingStore_ReturnsCopies(t *testing.T) {
	store := NewMappingStore()
	ctx := context.Background()
	_ = store.Save(ctx, testMapping("m1", "a", "b"))

	got, _ := store.Get(ctx, "m1")
	got.From.MemberSet[0].URI = "changed"

	again, _ := store.Get(ctx, "m1")
	assert.Equal(t, "a", again.From.MemberSet[0].URI)
}
