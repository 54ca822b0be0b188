package http

import "github.com/aretw0/fabricmock/pkg/domain"

func mapSnapshotFromDomain(snap *domain.TreeSnapshot) TreeSnapshot {
	return TreeSnapshot{
		RootTag:    int(snap.RootTag),
		CapturedAt: snap.CapturedAt,
		Children:   mapNodesFromDomain(snap.Children),
	}
}

func mapNodesFromDomain(nodes []domain.NodeSnapshot) []NodeSnapshot {
	out := make([]NodeSnapshot, 0, len(nodes))
	for _, n := range nodes {
		node := NodeSnapshot{
			Tag:      n.Tag,
			ViewName: n.ViewName,
			Handle:   n.Handle,
		}
		if len(n.Props) > 0 {
			props := map[string]interface{}(n.Props)
			node.Props = &props
		}
		if len(n.Children) > 0 {
			node.Children = ptr(mapNodesFromDomain(n.Children))
		}
		out = append(out, node)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
