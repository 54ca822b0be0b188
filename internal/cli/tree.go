package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/fabricmock/internal/presentation/graph"
	"github.com/aretw0/fabricmock/internal/presentation/tui"
	"github.com/aretw0/fabricmock/pkg/domain"
)

// Output formats for committed trees.
const (
	FormatMarkdown = "markdown"
	FormatMermaid  = "mermaid"
	FormatJSON     = "json"
)

// WriteTrees renders snaps to w in the given format.
// Markdown is styled with glamour when w is a terminal.
func WriteTrees(w io.Writer, snaps []*domain.TreeSnapshot, format string) error {
	switch format {
	case FormatMermaid:
		for _, snap := range snaps {
			fmt.Fprint(w, graph.GenerateMermaid(snap, nil))
		}
		return nil

	case FormatJSON:
		return writeJSON(w, snaps)

	case FormatMarkdown, "":
		parts := make([]string, 0, len(snaps))
		for _, snap := range snaps {
			parts = append(parts, graph.GenerateMarkdown(snap))
		}
		render := tui.NewRenderer(w)
		out, err := render(strings.Join(parts, "\n"))
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		fmt.Fprint(w, out)
		return nil

	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatMarkdown, FormatMermaid, FormatJSON)
	}
}
