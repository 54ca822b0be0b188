package domain

import (
	"errors"
	"fmt"
)

// ErrDuplicateTag is returned when a node is created with a tag that was already allocated.
var ErrDuplicateTag = errors.New("duplicate tag")

// ErrNotHostNode is returned when a measurement operation receives something other than a host node.
var ErrNotHostNode = errors.New("not a host node")

// ErrRootNotCommitted is returned when a root has no committed child set.
var ErrRootNotCommitted = errors.New("root not committed")

// ErrSnapshotNotFound is returned when a snapshot cannot be found in a store.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// DuplicateTagError reports the tag that was allocated twice.
type DuplicateTagError struct {
	Tag int
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("created two native views with tag %d", e.Tag)
}

func (e *DuplicateTagError) Unwrap() error {
	return ErrDuplicateTag
}

// NotHostNodeError describes why an argument was rejected as a host node.
type NotHostNodeError struct {
	// Null is true when the argument was nil.
	Null bool
	// Kind is the discriminant of the rejected node.
	Kind NodeKind
}

func (e *NotHostNodeError) Error() string {
	if e.Null {
		return "expected node to be an object, got null value"
	}
	return fmt.Sprintf("expected node to be a host node, got %s node", e.Kind)
}

func (e *NotHostNodeError) Unwrap() error {
	return ErrNotHostNode
}

// EnsureHostNode returns a *NotHostNodeError unless n is a host node.
func EnsureHostNode(n *Node) error {
	if n == nil {
		return &NotHostNodeError{Null: true}
	}
	if !n.IsHost() {
		return &NotHostNodeError{Kind: n.Kind}
	}
	return nil
}
