package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contractSnapshot builds a small tree: View(1)[Text(2)], Image(3).
func contractSnapshot(root domain.RootTag) *domain.TreeSnapshot {
	return &domain.TreeSnapshot{
		RootTag:    root,
		CapturedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Children: []domain.NodeSnapshot{
			{
				Tag:      1,
				ViewName: "View",
				Props:    domain.Props{"testID": "container"},
				Handle:   "A",
				Children: []domain.NodeSnapshot{
					{Tag: 2, ViewName: "Text", Handle: "B"},
				},
			},
			{Tag: 3, ViewName: "Image", Handle: "C"},
		},
	}
}

// RunSnapshotStoreContract runs a suite of tests to verify that a SnapshotStore
// implementation adheres to the defined interface contract.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	ctx := context.Background()
	root := domain.RootTag(time.Now().Nanosecond()%100000 + 1)

	t.Run("Save and Load", func(t *testing.T) {
		snap := contractSnapshot(root)

		err := store.Save(ctx, snap)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, root)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, root, loaded.RootTag)
		assert.True(t, snap.CapturedAt.Equal(loaded.CapturedAt))
		assert.Equal(t, 3, loaded.Count())
		require.Len(t, loaded.Children, 2)
		assert.Equal(t, "View", loaded.Children[0].ViewName)
		assert.Equal(t, "container", loaded.Children[0].Props["testID"])
		assert.Equal(t, "A", loaded.Children[0].Handle)
		require.Len(t, loaded.Children[0].Children, 1)
		assert.Equal(t, 2, loaded.Children[0].Children[0].Tag)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		snap := contractSnapshot(root)
		snap.Children = snap.Children[1:]
		require.NoError(t, store.Save(ctx, snap))

		loaded, err := store.Load(ctx, root)
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.Count())
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, root+1)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, contractSnapshot(root)))

		err := store.Delete(ctx, root)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, root)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound, "Load after Delete should return ErrSnapshotNotFound")
	})

	t.Run("List", func(t *testing.T) {
		r1, r2 := root+10, root+20
		require.NoError(t, store.Save(ctx, contractSnapshot(r2)))
		require.NoError(t, store.Save(ctx, contractSnapshot(r1)))

		defer func() {
			_ = store.Delete(ctx, r1)
			_ = store.Delete(ctx, r2)
		}()

		roots, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, roots, r1)
		assert.Contains(t, roots, r2)
		assert.NotContains(t, roots, root)
	})
}
