package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/fabricmock/pkg/domain"
)

// GenerateMarkdown renders a committed tree as a nested Markdown list.
func GenerateMarkdown(snap *domain.TreeSnapshot) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Root %d\n\n", snap.RootTag))

	if len(snap.Children) == 0 {
		sb.WriteString("_empty_\n")
		return sb.String()
	}

	var walk func(depth int, nodes []domain.NodeSnapshot)
	walk = func(depth int, nodes []domain.NodeSnapshot) {
		for _, n := range nodes {
			sb.WriteString(strings.Repeat("  ", depth))
			sb.WriteString(fmt.Sprintf("- **%s** `#%d`", n.ViewName, n.Tag))
			if n.Handle != nil {
				sb.WriteString(fmt.Sprintf(" (%v)", n.Handle))
			}
			if props := formatProps(n.Props); props != "" {
				sb.WriteString(" " + props)
			}
			sb.WriteString("\n")
			walk(depth+1, n.Children)
		}
	}
	walk(0, snap.Children)

	return sb.String()
}

func formatProps(props domain.Props) string {
	if len(props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, props[k]))
	}
	return "`{" + strings.Join(parts, " ") + "}`"
}
