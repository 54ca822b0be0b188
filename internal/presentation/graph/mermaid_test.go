package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/fabricmock/internal/presentation/graph"
	"github.com/aretw0/fabricmock/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func sampleSnapshot() *domain.TreeSnapshot {
	return &domain.TreeSnapshot{
		RootTag: 11,
		Children: []domain.NodeSnapshot{
			{
				Tag:      1,
				ViewName: "View",
				Handle:   "A",
				Props:    domain.Props{"flex": 1, "testID": "box"},
				Children: []domain.NodeSnapshot{
					{Tag: 2, ViewName: "Text", Handle: `say "hi"`},
				},
			},
			{Tag: 3, ViewName: "Image"},
		},
	}
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		overlay  *graph.GraphOverlay
		contains []string
		excludes []string
	}{
		{
			name: "Shapes And Edges",
			contains: []string{
				"graph TD\n",
				"root_11((\"RootNode 11\"))",
				"n1[\"View #1 (A)\"]",
				"root_11 --> n1",
				"n1 --> n2",
				"root_11 --> n3",
				"n3[\"Image #3\"]",
			},
			excludes: []string{"classDef"},
		},
		{
			name: "Label Escaping",
			contains: []string{
				"n2[\"Text #2 (say 'hi')\"]",
			},
		},
		{
			name:    "Overlay",
			overlay: &graph.GraphOverlay{Highlight: []int{2}},
			contains: []string{
				"classDef selected",
				"class n2 selected;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(sampleSnapshot(), tt.overlay)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestGenerateMarkdown(t *testing.T) {
	out := graph.GenerateMarkdown(sampleSnapshot())

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"# Root 11",
		"",
		"- **View** `#1` (A) `{flex=1 testID=box}`",
		"  - **Text** `#2` (say \"hi\")",
		"- **Image** `#3`",
	}, lines)
}

func TestGenerateMarkdown_Empty(t *testing.T) {
	out := graph.GenerateMarkdown(&domain.TreeSnapshot{RootTag: 4})
	assert.Equal(t, "# Root 4\n\n_empty_\n", out)
}
