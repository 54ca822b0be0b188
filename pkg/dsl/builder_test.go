package dsl_test

import (
	"testing"

	"github.com/aretw0/fabricmock"
	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/aretw0/fabricmock/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_CommitsTree(t *testing.T) {
	b := dsl.New(11)

	b.Add("A", "View").Prop("flex", 1).Children("B", "C")
	b.Add("B", "View").Children("D")
	b.Add("C", "Text").Handle("text-handle")
	b.Add("D", "Image").Tag(40)
	b.Commit("A")

	m := fabricmock.New()
	nodes, err := b.Build(m)
	require.NoError(t, err)

	assert.Equal(t, 1, nodes["A"].Tag)
	assert.Equal(t, 2, nodes["B"].Tag)
	assert.Equal(t, 3, nodes["C"].Tag)
	assert.Equal(t, 40, nodes["D"].Tag)
	assert.Equal(t, domain.Props{"flex": 1}, nodes["A"].Props)

	assert.Equal(t, "B", m.GetParentNode(nodes["D"]))
	assert.Equal(t, []any{"B", "text-handle"}, m.GetChildNodes(nodes["A"]))
	assert.Nil(t, m.GetParentNode(nodes["A"]))
	assert.Equal(t, []domain.RootTag{11}, m.Roots())
}

func TestBuilder_AddReturnsExisting(t *testing.T) {
	b := dsl.New(1)
	first := b.Add("A", "View")
	again := b.Add("A", "Text")
	assert.Same(t, first, again)
}

func TestBuilder_SkipsClaimedTags(t *testing.T) {
	b := dsl.New(1)
	b.Add("A", "View").Add("B", "View").Tag(1)
	b.Commit("A", "B")

	nodes, err := b.Build(fabricmock.New())
	require.NoError(t, err)
	assert.Equal(t, 2, nodes["A"].Tag)
	assert.Equal(t, 1, nodes["B"].Tag)
}

func TestBuilder_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *dsl.Builder)
	}{
		{
			name: "Unknown Child",
			setup: func(b *dsl.Builder) {
				b.Add("A", "View").Children("ghost")
			},
		},
		{
			name: "Two Parents",
			setup: func(b *dsl.Builder) {
				b.Add("A", "View").Children("C")
				b.Add("B", "View").Children("C")
				b.Add("C", "View")
			},
		},
		{
			name: "Cycle",
			setup: func(b *dsl.Builder) {
				b.Add("A", "View").Children("B")
				b.Add("B", "View").Children("A")
				b.Commit("A")
			},
		},
		{
			name: "Unknown Top Level",
			setup: func(b *dsl.Builder) {
				b.Commit("ghost")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := dsl.New(1)
			tt.setup(b)
			_, err := b.Build(fabricmock.New())
			assert.ErrorIs(t, err, dsl.ErrInvalidTree)
		})
	}
}

func TestBuilder_DuplicateTag(t *testing.T) {
	m := fabricmock.New()
	_, err := m.CreateNode(1, "View", 1, nil, nil)
	require.NoError(t, err)

	b := dsl.New(1)
	b.Add("A", "View")
	_, err = b.Build(m)
	assert.ErrorIs(t, err, domain.ErrDuplicateTag)
}
