package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/fabricmock/pkg/adapters/memory"
	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/aretw0/fabricmock/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunSnapshotStoreContract(t, memory.NewStore())
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	snap := &domain.TreeSnapshot{
		RootTag: 1,
		Children: []domain.NodeSnapshot{
			{Tag: 1, ViewName: "View", Props: domain.Props{"flex": 1}},
		},
	}
	require.NoError(t, store.Save(ctx, snap))

	snap.Children[0].Props["flex"] = 2

	loaded, err := store.Load(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, loaded.Children[0].Props["flex"])
}
