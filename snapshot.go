package fabricmock

import (
	"fmt"
	"maps"
	"slices"

	"github.com/aretw0/fabricmock/pkg/domain"
)

// Snapshot copies the committed tree of rootTag.
// It returns domain.ErrRootNotCommitted if the root was never completed.
func (m *Manager) Snapshot(rootTag domain.RootTag) (*domain.TreeSnapshot, error) {
	set, ok := m.roots[rootTag]
	if !ok {
		return nil, fmt.Errorf("root %d: %w", rootTag, domain.ErrRootNotCommitted)
	}
	snap := domain.NewTreeSnapshot(rootTag, set)
	snap.CapturedAt = m.clock()
	return snap, nil
}

// Restore rebuilds the tree described by snap and completes its root.
//
// A tag that appears more than once in snap (a node and its clones) is
// allocated once. If any tag of snap is already allocated in m, Restore
// returns a *domain.DuplicateTagError and leaves m untouched.
// Restore does not appear in the call log.
func (m *Manager) Restore(snap *domain.TreeSnapshot) error {
	tags := make(map[int]struct{})
	collectTags(snap.Children, tags)

	for _, tag := range slices.Sorted(maps.Keys(tags)) {
		if _, ok := m.allocated[tag]; ok {
			return fmt.Errorf("failed to restore root %d: %w", snap.RootTag, &domain.DuplicateTagError{Tag: tag})
		}
	}
	maps.Copy(m.allocated, tags)

	set := domain.NewChildSet()
	for _, s := range snap.Children {
		set.Append(restoreNode(snap.RootTag, s))
	}
	m.roots[snap.RootTag] = set
	m.logger.Debug("root restored", "root", int(snap.RootTag), "nodes", snap.Count())
	return nil
}

func collectTags(nodes []domain.NodeSnapshot, tags map[int]struct{}) {
	for _, n := range nodes {
		tags[n.Tag] = struct{}{}
		collectTags(n.Children, tags)
	}
}

func restoreNode(rootTag domain.RootTag, s domain.NodeSnapshot) *domain.Node {
	node := &domain.Node{
		Tag:            s.Tag,
		RootTag:        rootTag,
		ViewName:       s.ViewName,
		Kind:           domain.KindHost,
		Props:          s.Props,
		InstanceHandle: s.Handle,
		Children:       make([]*domain.Node, 0, len(s.Children)),
	}
	for _, child := range s.Children {
		node.Children = append(node.Children, restoreNode(rootTag, child))
	}
	return node
}
