package domain

import "maps"

// RootTag identifies a root tree (a surface) in the emulator.
type RootTag int

// NodeKind discriminates host nodes from the synthetic root.
type NodeKind int

const (
	// KindUnknown is the zero value. Such a node is never accepted as a host node.
	KindUnknown NodeKind = iota
	// KindHost marks nodes produced by CreateNode and its clones.
	KindHost
	// KindRoot marks the synthetic root wrapping a committed child set.
	KindRoot
)

func (k NodeKind) String() string {
	switch k {
	case KindHost:
		return "host"
	case KindRoot:
		return "root"
	default:
		return "unknown"
	}
}

// Props holds style and behavior attributes of a node.
type Props map[string]any

// Merge returns a new Props with next applied on top of p.
// Neither input is modified.
func (p Props) Merge(next Props) Props {
	out := make(Props, len(p)+len(next))
	maps.Copy(out, p)
	maps.Copy(out, next)
	return out
}

// Node represents one element of the simulated native tree.
//
// Nodes are replaced wholesale by the clone operations. The only in-place
// mutation is appending to Children.
type Node struct {
	Tag      int
	RootTag  RootTag
	ViewName string
	Kind     NodeKind
	Props    Props

	// InstanceHandle is an opaque back-reference owned by the caller.
	// The emulator never inspects it.
	InstanceHandle any

	Children []*Node
}

// IsHost reports whether n is a renderable host node.
func (n *Node) IsHost() bool {
	return n != nil && n.Kind == KindHost
}

// IsRoot reports whether n is a synthetic root.
func (n *Node) IsRoot() bool {
	return n != nil && n.Kind == KindRoot
}

// ChildHandles maps the children of n to their instance handles, in order.
func (n *Node) ChildHandles() []any {
	handles := make([]any, 0, len(n.Children))
	for _, child := range n.Children {
		if child == nil {
			handles = append(handles, nil)
			continue
		}
		handles = append(handles, child.InstanceHandle)
	}
	return handles
}

// ChildSet is an ordered, mutable sequence of nodes accumulated before a
// root is completed.
type ChildSet struct {
	Nodes []*Node
}

// NewChildSet creates a child set holding the given nodes.
func NewChildSet(nodes ...*Node) *ChildSet {
	return &ChildSet{Nodes: nodes}
}

// Append adds child to the end of the set.
func (s *ChildSet) Append(child *Node) {
	s.Nodes = append(s.Nodes, child)
}

// Len returns the number of nodes in the set. A nil set is empty.
func (s *ChildSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Nodes)
}
