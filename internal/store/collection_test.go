// AngelaMos | 2026
// collection_test.go

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/copilothub/internal/core"
)

type note struct {
	Meta
	Title string `json:"title"`
	Tag   string `json:"tag,omitempty"`
}

func newTestCollection(t *testing.T) *Collection[note, *note] {
	t.Helper()
	return NewCollection[note](NewMemoryKV(), "test", "notes")
}

func TestCollectionCreateStampsRecord(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.FixedZone("CET", 3600))
	coll.now = func() time.Time { return fixed }
	coll.genID = func() string { return "note-1" }

	created, err := coll.Create(ctx, note{Title: "first"})
	require.NoError(t, err)

	assert.Equal(t, "note-1", created.ID)
	assert.Equal(t, fixed.UTC(), created.CreatedAt)
	assert.Equal(t, time.UTC, created.CreatedAt.Location())

	got, err := coll.GetByID(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
}

func TestCollectionGetByIDNotFound(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	_, err := coll.GetByID(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestCollectionUpdatePreservesCreatedAt(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	created, err := coll.Create(ctx, note{Title: "draft"})
	require.NoError(t, err)
	originalCreatedAt := created.CreatedAt

	modified := *created
	modified.Title = "final"
	modified.CreatedAt = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	updated, err := coll.Update(ctx, modified)
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, originalCreatedAt, updated.CreatedAt)

	got, err := coll.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, originalCreatedAt, got.CreatedAt)
}

func TestCollectionUpdateUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	_, err := coll.Create(ctx, note{Title: "only"})
	require.NoError(t, err)

	phantom := note{Title: "phantom"}
	phantom.ID = "no-such-id"
	_, err = coll.Update(ctx, phantom)
	require.NoError(t, err)

	count, err := coll.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = coll.GetByID(ctx, "no-such-id")
	assert.Error(t, err)
}

func TestCollectionDelete(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	created, err := coll.Create(ctx, note{Title: "doomed"})
	require.NoError(t, err)

	require.NoError(t, coll.Delete(ctx, created.ID))

	_, err = coll.GetByID(ctx, created.ID)
	assert.Error(t, err)

	// unknown IDs are a no-op
	require.NoError(t, coll.Delete(ctx, "already-gone"))
}

func TestCollectionDeleteWhere(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	for _, n := range []note{
		{Title: "a", Tag: "stale"},
		{Title: "b", Tag: "fresh"},
		{Title: "c", Tag: "stale"},
	} {
		_, err := coll.Create(ctx, n)
		require.NoError(t, err)
	}

	removed, err := coll.DeleteWhere(ctx, func(n note) bool {
		return n.Tag == "stale"
	})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	remaining, err := coll.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "b", remaining[0].Title)

	removed, err = coll.DeleteWhere(ctx, func(n note) bool {
		return n.Tag == "stale"
	})
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestCollectionFilterAnyCount(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	for _, title := range []string{"alpha", "beta", "gamma"} {
		_, err := coll.Create(ctx, note{Title: title})
		require.NoError(t, err)
	}

	matched, err := coll.Filter(ctx, func(n note) bool {
		return n.Title != "beta"
	})
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	found, err := coll.Any(ctx, func(n note) bool {
		return n.Title == "gamma"
	})
	require.NoError(t, err)
	assert.True(t, found)

	found, err = coll.Any(ctx, func(n note) bool {
		return n.Title == "delta"
	})
	require.NoError(t, err)
	assert.False(t, found)

	count, err := coll.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCollectionEmptyListIsNotAnError(t *testing.T) {
	ctx := context.Background()
	coll := newTestCollection(t)

	records, err := coll.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	count, err := coll.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
