package fabricmock

import (
	"slices"

	"github.com/aretw0/fabricmock/internal/tree"
	"github.com/aretw0/fabricmock/pkg/domain"
)

// ancestors locates node in the committed tree of its root.
func (m *Manager) ancestors(node *domain.Node) tree.Path {
	if node == nil {
		return nil
	}
	set, ok := m.roots[node.RootTag]
	if !ok {
		return nil
	}
	return tree.AncestorsInCurrentTree(set, node)
}

// GetParentNode returns the instance handle of node's parent in the committed
// tree. It returns nil when the root was never completed, when node is not in
// the committed tree, or when node is a top-level child of its root.
func (m *Manager) GetParentNode(node *domain.Node) any {
	handle := m.parentHandle(node)
	m.record(domain.OpGetParentNode, nil, node)
	return handle
}

func (m *Manager) parentHandle(node *domain.Node) any {
	if node.IsRoot() {
		return nil
	}
	step, ok := m.ancestors(node).Parent()
	if !ok {
		return nil
	}
	parent := step.Resolve()
	if parent == nil {
		return nil
	}
	return parent.InstanceHandle
}

// GetChildNodes returns the instance handles of node's children as found in
// the committed tree. It returns an empty slice when node cannot be located.
// For the synthetic root returned by RootNode it lists the committed set.
func (m *Manager) GetChildNodes(node *domain.Node) []any {
	handles := m.childHandles(node)
	m.record(domain.OpGetChildNodes, nil, node)
	return handles
}

func (m *Manager) childHandles(node *domain.Node) []any {
	if node.IsRoot() {
		if root := m.RootNode(node.RootTag); root != nil {
			return root.ChildHandles()
		}
		return []any{}
	}
	step, ok := m.ancestors(node).Last()
	if !ok {
		return []any{}
	}
	current := step.Resolve()
	if current == nil {
		return []any{}
	}
	return current.ChildHandles()
}

// RootNode returns the synthetic root wrapping the committed set of rootTag,
// or nil when the root was never completed.
func (m *Manager) RootNode(rootTag domain.RootTag) *domain.Node {
	set, ok := m.roots[rootTag]
	if !ok {
		return nil
	}
	return tree.SyntheticRoot(rootTag, set)
}

// Roots returns the tags of every completed root in ascending order.
func (m *Manager) Roots() []domain.RootTag {
	tags := make([]domain.RootTag, 0, len(m.roots))
	for tag := range m.roots {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Committed returns the child set last completed for rootTag.
func (m *Manager) Committed(rootTag domain.RootTag) (*domain.ChildSet, bool) {
	set, ok := m.roots[rootTag]
	return set, ok
}
