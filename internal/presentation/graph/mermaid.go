package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/fabricmock/pkg/domain"
)

// GraphOverlay contains dynamic data to highlight on the graph.
type GraphOverlay struct {
	// Highlight lists node tags to style as selected.
	Highlight []int
}

// GenerateMermaid produces a Mermaid flowchart of a committed tree.
// The synthetic root is drawn as a ((Circle)), host nodes as [Rectangle]
// labelled with view name, tag and instance handle.
func GenerateMermaid(snap *domain.TreeSnapshot, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	rootID := fmt.Sprintf("root_%d", snap.RootTag)
	sb.WriteString(fmt.Sprintf("    %s((\"%s %d\"))\n", rootID, domain.RootNodeViewName, snap.RootTag))

	var walk func(parentID string, nodes []domain.NodeSnapshot)
	walk = func(parentID string, nodes []domain.NodeSnapshot) {
		for _, n := range nodes {
			id := nodeID(n.Tag)
			sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, escapeLabel(label(n))))
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", parentID, id))
			walk(id, n.Children)
		}
	}
	walk(rootID, snap.Children)

	if overlay != nil && len(overlay.Highlight) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast regardless of theme
		sb.WriteString("    classDef selected fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, tag := range overlay.Highlight {
			sb.WriteString(fmt.Sprintf("    class %s selected;\n", nodeID(tag)))
		}
	}

	return sb.String()
}

func nodeID(tag int) string {
	return fmt.Sprintf("n%d", tag)
}

func label(n domain.NodeSnapshot) string {
	l := fmt.Sprintf("%s #%d", n.ViewName, n.Tag)
	if n.Handle != nil {
		l += fmt.Sprintf(" (%v)", n.Handle)
	}
	return l
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
