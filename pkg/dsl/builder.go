package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/fabricmock"
	"github.com/aretw0/fabricmock/pkg/domain"
)

// ErrInvalidTree is wrapped by every structural error returned from Build.
var ErrInvalidTree = errors.New("invalid tree")

// Builder manages the tree construction.
type Builder struct {
	root  domain.RootTag
	order []string
	nodes map[string]*NodeBuilder
	top   []string
}

// New creates a builder for the given root.
func New(root domain.RootTag) *Builder {
	return &Builder{
		root:  root,
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add declares a node. If the ref already exists, it returns the existing builder.
func (b *Builder) Add(ref, viewName string) *NodeBuilder {
	if nb, ok := b.nodes[ref]; ok {
		return nb
	}
	nb := &NodeBuilder{
		ref:      ref,
		viewName: viewName,
		handle:   ref,
		builder:  b,
	}
	b.nodes[ref] = nb
	b.order = append(b.order, ref)
	return nb
}

// Commit sets the top-level nodes of the committed child set, in order.
func (b *Builder) Commit(refs ...string) *Builder {
	b.top = append(b.top, refs...)
	return b
}

// Build creates every node on m, links children and commits the root.
// It returns the created nodes by ref.
func (b *Builder) Build(m *fabricmock.Manager) (map[string]*domain.Node, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	tags := b.assignTags()
	nodes := make(map[string]*domain.Node, len(b.order))
	for _, ref := range b.order {
		nb := b.nodes[ref]
		n, err := m.CreateNode(tags[ref], nb.viewName, b.root, nb.props, nb.handle)
		if err != nil {
			return nil, fmt.Errorf("failed to create %q: %w", ref, err)
		}
		nodes[ref] = n
	}

	for _, ref := range b.order {
		for _, child := range b.nodes[ref].children {
			m.AppendChild(nodes[ref], nodes[child])
		}
	}

	set := m.CreateChildSet(b.root)
	for _, ref := range b.top {
		m.AppendChildToSet(set, nodes[ref])
	}
	m.CompleteRoot(b.root, set)

	return nodes, nil
}

// validate rejects unknown refs and nodes with more than one parent.
// With a single parent per node and parentless top-level nodes, no cycle
// can be reached from the committed set.
func (b *Builder) validate() error {
	parent := make(map[string]string)
	for _, ref := range b.order {
		for _, child := range b.nodes[ref].children {
			if _, ok := b.nodes[child]; !ok {
				return fmt.Errorf("%w: %q has unknown child %q", ErrInvalidTree, ref, child)
			}
			if prev, ok := parent[child]; ok {
				return fmt.Errorf("%w: %q is a child of both %q and %q", ErrInvalidTree, child, prev, ref)
			}
			parent[child] = ref
		}
	}

	seen := make(map[string]bool, len(b.top))
	for _, ref := range b.top {
		if _, ok := b.nodes[ref]; !ok {
			return fmt.Errorf("%w: unknown top-level node %q", ErrInvalidTree, ref)
		}
		if p, ok := parent[ref]; ok {
			return fmt.Errorf("%w: top-level node %q is also a child of %q", ErrInvalidTree, ref, p)
		}
		if seen[ref] {
			return fmt.Errorf("%w: top-level node %q committed twice", ErrInvalidTree, ref)
		}
		seen[ref] = true
	}
	return nil
}

func (b *Builder) assignTags() map[string]int {
	claimed := make(map[int]bool)
	for _, nb := range b.nodes {
		if nb.tag != 0 {
			claimed[nb.tag] = true
		}
	}

	tags := make(map[string]int, len(b.order))
	next := 1
	for _, ref := range b.order {
		nb := b.nodes[ref]
		if nb.tag != 0 {
			tags[ref] = nb.tag
			continue
		}
		for claimed[next] {
			next++
		}
		tags[ref] = next
		claimed[next] = true
	}
	return tags
}
