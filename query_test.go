package fabricmock_test

import (
	"testing"

	"github.com/aretw0/fabricmock"
	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// committedTree builds A[B[D], C] and commits it as the only child of rootTag.
func committedTree(t *testing.T) (*fabricmock.Manager, map[string]*domain.Node) {
	t.Helper()
	m := fabricmock.New()

	nodes := map[string]*domain.Node{
		"A": mustCreate(t, m, 1, "A"),
		"B": mustCreate(t, m, 2, "B"),
		"C": mustCreate(t, m, 3, "C"),
		"D": mustCreate(t, m, 4, "D"),
	}
	m.AppendChild(nodes["B"], nodes["D"])
	m.AppendChild(nodes["A"], nodes["B"])
	m.AppendChild(nodes["A"], nodes["C"])

	set := m.CreateChildSet(rootTag)
	m.AppendChildToSet(set, nodes["A"])
	m.CompleteRoot(rootTag, set)

	return m, nodes
}

func TestGetParentNode(t *testing.T) {
	m, n := committedTree(t)

	assert.Equal(t, "B", m.GetParentNode(n["D"]))
	assert.Equal(t, "A", m.GetParentNode(n["B"]))
	assert.Equal(t, "A", m.GetParentNode(n["C"]))
	assert.Nil(t, m.GetParentNode(n["A"]), "direct root child has no parent")
}

func TestGetChildNodes(t *testing.T) {
	m, n := committedTree(t)

	assert.Equal(t, []any{"B", "C"}, m.GetChildNodes(n["A"]))
	assert.Equal(t, []any{"D"}, m.GetChildNodes(n["B"]))
	assert.Empty(t, m.GetChildNodes(n["D"]))
}

func TestQueries_ResolveAgainstCommittedTree(t *testing.T) {
	m, n := committedTree(t)

	// A detached clone with no children still resolves to the committed node.
	detached := m.CloneNodeWithNewChildren(n["A"])
	assert.Equal(t, []any{"B", "C"}, m.GetChildNodes(detached))

	// The next commit replaces the visible tree.
	a2 := m.CloneNodeWithNewChildren(n["A"])
	m.AppendChild(a2, n["C"])
	set := m.CreateChildSet(rootTag)
	m.AppendChildToSet(set, a2)
	m.CompleteRoot(rootTag, set)

	assert.Equal(t, []any{"C"}, m.GetChildNodes(n["A"]))
	assert.Nil(t, m.GetParentNode(n["D"]), "D left the committed tree")
	assert.Empty(t, m.GetChildNodes(n["B"]))
}

func TestQueries_ObserveAppendAfterCommit(t *testing.T) {
	m, n := committedTree(t)

	e := mustCreate(t, m, 5, "E")
	m.AppendChild(n["C"], e)

	assert.Equal(t, []any{"E"}, m.GetChildNodes(n["C"]))
	assert.Equal(t, "C", m.GetParentNode(e))
}

func TestQueries_UnknownNodes(t *testing.T) {
	t.Run("Root Never Completed", func(t *testing.T) {
		m := fabricmock.New()
		n := mustCreate(t, m, 1, "A")

		assert.Nil(t, m.GetParentNode(n))
		children := m.GetChildNodes(n)
		assert.NotNil(t, children)
		assert.Empty(t, children)
	})

	t.Run("Tag Absent From Committed Tree", func(t *testing.T) {
		m, _ := committedTree(t)
		stray := mustCreate(t, m, 99, "Z")

		assert.Nil(t, m.GetParentNode(stray))
		assert.Empty(t, m.GetChildNodes(stray))
	})

	t.Run("Nil Node", func(t *testing.T) {
		m, _ := committedTree(t)
		assert.Nil(t, m.GetParentNode(nil))
		assert.Empty(t, m.GetChildNodes(nil))
	})
}

func TestRootNode(t *testing.T) {
	m := fabricmock.New()
	assert.Nil(t, m.RootNode(rootTag))

	a := mustCreate(t, m, 1, "A")
	b := mustCreate(t, m, 2, "B")
	set := m.CreateChildSet(rootTag)
	m.AppendChildToSet(set, a)
	m.AppendChildToSet(set, b)
	m.CompleteRoot(rootTag, set)

	root := m.RootNode(rootTag)
	require.NotNil(t, root)
	assert.True(t, root.IsRoot())
	assert.Equal(t, domain.RootNodeTag, root.Tag)
	assert.Equal(t, domain.RootNodeViewName, root.ViewName)
	assert.Nil(t, root.InstanceHandle)

	assert.Equal(t, []any{"A", "B"}, m.GetChildNodes(root))
	assert.Nil(t, m.GetParentNode(root))
	assert.Equal(t, []domain.RootTag{rootTag}, m.Roots())
}

func TestCompleteRoot_Replaces(t *testing.T) {
	m := fabricmock.New()
	a := mustCreate(t, m, 1, "A")
	b := mustCreate(t, m, 2, "B")

	first := m.CreateChildSet(rootTag)
	m.AppendChildToSet(first, a)
	m.CompleteRoot(rootTag, first)

	second := m.CreateChildSet(rootTag)
	m.AppendChildToSet(second, b)
	m.CompleteRoot(rootTag, second)

	committed, ok := m.Committed(rootTag)
	require.True(t, ok)
	assert.Same(t, second, committed)
	assert.Equal(t, []any{"B"}, m.GetChildNodes(m.RootNode(rootTag)))
}
