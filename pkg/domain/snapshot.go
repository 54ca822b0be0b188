package domain

import (
	"maps"
	"time"
)

// NodeSnapshot is a serializable copy of a node and its subtree.
type NodeSnapshot struct {
	Tag      int            `json:"tag" yaml:"tag"`
	ViewName string         `json:"view_name" yaml:"view_name"`
	Props    Props          `json:"props,omitempty" yaml:"props,omitempty"`
	Handle   any            `json:"handle,omitempty" yaml:"handle,omitempty"`
	Children []NodeSnapshot `json:"children,omitempty" yaml:"children,omitempty"`
}

// TreeSnapshot captures the committed tree of a root.
type TreeSnapshot struct {
	RootTag    RootTag        `json:"root_tag" yaml:"root_tag"`
	CapturedAt time.Time      `json:"captured_at" yaml:"captured_at"`
	Children   []NodeSnapshot `json:"children" yaml:"children"`
}

// NewTreeSnapshot copies the nodes of set into a snapshot for root.
func NewTreeSnapshot(root RootTag, set *ChildSet) *TreeSnapshot {
	snap := &TreeSnapshot{
		RootTag:    root,
		CapturedAt: time.Now(),
		Children:   []NodeSnapshot{},
	}
	if set == nil {
		return snap
	}
	for _, n := range set.Nodes {
		snap.Children = append(snap.Children, snapshotNode(n))
	}
	return snap
}

func snapshotNode(n *Node) NodeSnapshot {
	s := NodeSnapshot{
		Tag:      n.Tag,
		ViewName: n.ViewName,
		Props:    maps.Clone(n.Props),
		Handle:   n.InstanceHandle,
	}
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		s.Children = append(s.Children, snapshotNode(child))
	}
	return s
}

// Count returns the number of nodes in the snapshot.
func (s *TreeSnapshot) Count() int {
	total := 0
	var walk func([]NodeSnapshot)
	walk = func(nodes []NodeSnapshot) {
		for _, n := range nodes {
			total++
			walk(n.Children)
		}
	}
	walk(s.Children)
	return total
}
