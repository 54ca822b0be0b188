// Package tree implements the ancestor search used to resolve nodes against
// the committed tree of a root.
package tree

import "github.com/aretw0/fabricmock/pkg/domain"

// Step is one hop of a Path: Node.Children[Index] is the next node on the way
// to the target.
type Step struct {
	Node  *domain.Node
	Index int
}

// Path lists the ancestors of a node, outermost first.
// A nil Path means the node could not be located.
type Path []Step

// Parent returns the step leading to the target's parent.
// ok is false when the target has no parent in the tree (it hangs directly
// off the synthetic root).
func (p Path) Parent() (Step, bool) {
	if len(p) < 2 {
		return Step{}, false
	}
	return p[len(p)-2], true
}

// Last returns the step leading to the target itself.
func (p Path) Last() (Step, bool) {
	if len(p) == 0 {
		return Step{}, false
	}
	return p[len(p)-1], true
}

// Resolve returns the live child referenced by s.
// It reads s.Node.Children at call time, so appends made after the search
// are observed.
func (s Step) Resolve() *domain.Node {
	if s.Node == nil || s.Index < 0 || s.Index >= len(s.Node.Children) {
		return nil
	}
	return s.Node.Children[s.Index]
}

// SyntheticRoot wraps a committed child set in a root node (tag 0, "RootNode").
func SyntheticRoot(root domain.RootTag, set *domain.ChildSet) *domain.Node {
	var children []*domain.Node
	if set != nil {
		children = set.Nodes
	}
	return &domain.Node{
		Tag:      domain.RootNodeTag,
		RootTag:  root,
		ViewName: domain.RootNodeViewName,
		Kind:     domain.KindRoot,
		Props:    domain.Props{},
		Children: children,
	}
}

// AncestorsInCurrentTree locates target inside the committed set of its root.
// The returned path starts at the synthetic root. It returns nil when set is
// nil or when no top-level child contains target.
func AncestorsInCurrentTree(set *domain.ChildSet, target *domain.Node) Path {
	if set == nil || target == nil {
		return nil
	}

	root := SyntheticRoot(target.RootTag, set)
	for i, child := range root.Children {
		if ancestors := Ancestors(child, target); ancestors != nil {
			return append(Path{{Node: root, Index: i}}, ancestors...)
		}
	}
	return nil
}

// Ancestors searches the subtree at candidate for target, matching by tag.
// Children are visited depth-first, left to right; the first match wins.
// A match at candidate itself yields an empty, non-nil path.
func Ancestors(candidate, target *domain.Node) Path {
	if candidate == nil || target == nil {
		return nil
	}
	if candidate.Tag == target.Tag {
		return Path{}
	}

	for i, child := range candidate.Children {
		if ancestors := Ancestors(child, target); ancestors != nil {
			return append(Path{{Node: candidate, Index: i}}, ancestors...)
		}
	}
	return nil
}
