package fabricmock

import (
	"slices"

	"github.com/aretw0/fabricmock/pkg/domain"
)

// CreateNode allocates a new leaf host node.
// It returns a *domain.DuplicateTagError if tag was already allocated.
func (m *Manager) CreateNode(tag int, viewName string, rootTag domain.RootTag, props domain.Props, instanceHandle any) (*domain.Node, error) {
	node, err := m.createNode(tag, viewName, rootTag, props, instanceHandle)
	m.record(domain.OpCreateNode, err, tag, viewName, rootTag, props, instanceHandle)
	return node, err
}

func (m *Manager) createNode(tag int, viewName string, rootTag domain.RootTag, props domain.Props, instanceHandle any) (*domain.Node, error) {
	if _, ok := m.allocated[tag]; ok {
		return nil, &domain.DuplicateTagError{Tag: tag}
	}
	m.allocated[tag] = struct{}{}

	return &domain.Node{
		Tag:            tag,
		RootTag:        rootTag,
		ViewName:       viewName,
		Kind:           domain.KindHost,
		Props:          props,
		InstanceHandle: instanceHandle,
		Children:       []*domain.Node{},
	}, nil
}

// clone returns a shallow copy of node. The children slice is clipped so an
// append on the copy never writes into the original's backing array.
func clone(node *domain.Node) *domain.Node {
	if node == nil {
		return nil
	}
	c := *node
	c.Children = slices.Clip(node.Children)
	return &c
}

// CloneNode returns a shallow copy of node with the same children and props.
func (m *Manager) CloneNode(node *domain.Node) *domain.Node {
	c := clone(node)
	m.record(domain.OpCloneNode, nil, node)
	return c
}

// CloneNodeWithNewChildren returns a copy of node with no children.
func (m *Manager) CloneNodeWithNewChildren(node *domain.Node) *domain.Node {
	c := clone(node)
	if c != nil {
		c.Children = []*domain.Node{}
	}
	m.record(domain.OpCloneNodeWithNewChildren, nil, node)
	return c
}

// CloneNodeWithNewProps returns a copy of node whose props are newProps
// merged over the existing ones.
func (m *Manager) CloneNodeWithNewProps(node *domain.Node, newProps domain.Props) *domain.Node {
	c := clone(node)
	if c != nil {
		c.Props = node.Props.Merge(newProps)
	}
	m.record(domain.OpCloneNodeWithNewProps, nil, node, newProps)
	return c
}

// CloneNodeWithNewChildrenAndProps combines CloneNodeWithNewChildren and
// CloneNodeWithNewProps.
func (m *Manager) CloneNodeWithNewChildrenAndProps(node *domain.Node, newProps domain.Props) *domain.Node {
	c := clone(node)
	if c != nil {
		c.Children = []*domain.Node{}
		c.Props = node.Props.Merge(newProps)
	}
	m.record(domain.OpCloneNodeWithNewChildrenAndProps, nil, node, newProps)
	return c
}

// CreateChildSet returns a new empty child set. rootTag is ignored.
func (m *Manager) CreateChildSet(rootTag domain.RootTag) *domain.ChildSet {
	m.record(domain.OpCreateChildSet, nil, rootTag)
	return domain.NewChildSet()
}

// AppendChild appends child to parent's children in place and returns parent
// itself. Unlike the clone family this mutates its argument.
func (m *Manager) AppendChild(parent, child *domain.Node) *domain.Node {
	if parent != nil {
		parent.Children = append(parent.Children, child)
	}
	m.record(domain.OpAppendChild, nil, parent, child)
	return parent
}

// AppendChildToSet appends child to set in place.
func (m *Manager) AppendChildToSet(set *domain.ChildSet, child *domain.Node) {
	if set != nil {
		set.Append(child)
	}
	m.record(domain.OpAppendChildToSet, nil, set, child)
}

// CompleteRoot commits set as the top-level children of rootTag, replacing
// any previous commit.
func (m *Manager) CompleteRoot(rootTag domain.RootTag, set *domain.ChildSet) {
	m.roots[rootTag] = set
	m.record(domain.OpCompleteRoot, nil, rootTag, set)
	m.logger.Debug("root completed", "root", int(rootTag), "children", set.Len())
}
