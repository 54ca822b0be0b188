package middleware

import (
	"context"
	"regexp"

	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/aretw0/fabricmock/pkg/ports"
)

// Mask replaces redacted prop values.
const Mask = "***"

type piiMiddleware struct {
	next     ports.SnapshotStore
	patterns []*regexp.Regexp
}

// NewPIIMiddleware creates a middleware that masks prop values whose keys
// match any of the patterns before a snapshot is saved.
func NewPIIMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.SnapshotStore) ports.SnapshotStore {
		return &piiMiddleware{next: next, patterns: patterns}
	}
}

func (m *piiMiddleware) Save(ctx context.Context, snap *domain.TreeSnapshot) error {
	// Work on a copy; the caller may keep rendering the snapshot.
	cloned := *snap
	cloned.Children = m.maskNodes(snap.Children)
	return m.next.Save(ctx, &cloned)
}

func (m *piiMiddleware) Load(ctx context.Context, root domain.RootTag) (*domain.TreeSnapshot, error) {
	return m.next.Load(ctx, root)
}

func (m *piiMiddleware) Delete(ctx context.Context, root domain.RootTag) error {
	return m.next.Delete(ctx, root)
}

func (m *piiMiddleware) List(ctx context.Context) ([]domain.RootTag, error) {
	return m.next.List(ctx)
}

func (m *piiMiddleware) maskNodes(nodes []domain.NodeSnapshot) []domain.NodeSnapshot {
	if nodes == nil {
		return nil
	}
	out := make([]domain.NodeSnapshot, len(nodes))
	for i, n := range nodes {
		n.Props = deepCopyMap(n.Props)
		maskMap(n.Props, m.patterns)
		n.Children = m.maskNodes(n.Children)
		out[i] = n
	}
	return out
}

// Helpers

func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		// Handle nested maps
		if subMap, ok := v.(map[string]any); ok {
			out[k] = deepCopyMap(subMap)
		} else {
			out[k] = v // shallow copy of value
		}
	}
	return out
}

func maskMap(m map[string]any, patterns []*regexp.Regexp) {
	for k, v := range m {
		masked := false
		for _, p := range patterns {
			if p.MatchString(k) {
				m[k] = Mask
				masked = true
				break
			}
		}

		if subMap, ok := v.(map[string]any); ok && !masked {
			maskMap(subMap, patterns)
		}
	}
}
