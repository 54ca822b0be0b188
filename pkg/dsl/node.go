package dsl

import "github.com/aretw0/fabricmock/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	ref      string
	viewName string
	tag      int
	props    domain.Props
	handle   any
	children []string
	builder  *Builder
}

// Tag sets an explicit tag. Nodes without one are numbered in the order
// they were added, skipping tags claimed explicitly.
func (n *NodeBuilder) Tag(tag int) *NodeBuilder {
	n.tag = tag
	return n
}

// Props merges props into the node's props.
func (n *NodeBuilder) Props(props domain.Props) *NodeBuilder {
	n.props = n.props.Merge(props)
	return n
}

// Prop sets a single prop.
func (n *NodeBuilder) Prop(key string, value any) *NodeBuilder {
	return n.Props(domain.Props{key: value})
}

// Handle sets the instance handle. It defaults to the node's ref.
func (n *NodeBuilder) Handle(handle any) *NodeBuilder {
	n.handle = handle
	return n
}

// Children appends child refs in order.
func (n *NodeBuilder) Children(refs ...string) *NodeBuilder {
	n.children = append(n.children, refs...)
	return n
}

// Add is a shortcut for the parent builder's Add, for chaining siblings.
func (n *NodeBuilder) Add(ref, viewName string) *NodeBuilder {
	return n.builder.Add(ref, viewName)
}
