package render

import (
	"testing"

	"github.com/benjaminschreck/go-mdocx/pkg/mdocx/xml"
)

func TestMergeConsecutiveRuns(t *testing.T) {
	bold := func() *xml.RunProperties { return &xml.RunProperties{Bold: true} }

	tests := []struct {
		name     string
		content  []xml.ParagraphContent
		expected []string
	}{
		{
			name: "merges identical plain runs",
			content: []xml.ParagraphContent{
				xml.NewTextRun("Hello ", nil),
				xml.NewTextRun("world", nil),
			},
			expected: []string{"Hello world"},
		},
		{
			name: "merges equal but distinct property values",
			content: []xml.ParagraphContent{
				xml.NewTextRun("a", bold()),
				xml.NewTextRun("b", bold()),
			},
			expected: []string{"ab"},
		},
		{
			name: "keeps different formatting apart",
			content: []xml.ParagraphContent{
				xml.NewTextRun("plain ", nil),
				xml.NewTextRun("bold", bold()),
				xml.NewTextRun(" plain", nil),
			},
			expected: []string{"plain ", "bold", " plain"},
		},
		{
			name: "break starts a new run",
			content: []xml.ParagraphContent{
				xml.NewTextRun("one", nil),
				&xml.Run{Break: &xml.Break{}, Text: xml.NewText("two")},
				xml.NewTextRun(" more", nil),
			},
			expected: []string{"one", "two more"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			para := &xml.Paragraph{Content: tt.content}
			MergeConsecutiveRuns(para)

			runs := para.Runs()
			if len(runs) != len(tt.expected) {
				t.Fatalf("Expected %d runs, got %d", len(tt.expected), len(runs))
			}
			for i, run := range runs {
				if got := run.GetText(); got != tt.expected[i] {
					t.Errorf("Run %d: expected %q, got %q", i, tt.expected[i], got)
				}
			}
		})
	}
}

func TestMergeConsecutiveRunsPreservesSpace(t *testing.T) {
	para := &xml.Paragraph{Content: []xml.ParagraphContent{
		xml.NewTextRun("word", nil),
		xml.NewTextRun(" ", nil),
	}}
	MergeConsecutiveRuns(para)

	runs := para.Runs()
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	if runs[0].Text.Space != "preserve" {
		t.Errorf("Expected merged text with trailing space to preserve whitespace")
	}
}

func TestMergeConsecutiveRunsDoesNotMutateInput(t *testing.T) {
	first := xml.NewTextRun("a", nil)
	para := &xml.Paragraph{Content: []xml.ParagraphContent{first, xml.NewTextRun("b", nil)}}
	MergeConsecutiveRuns(para)

	if first.GetText() != "a" {
		t.Errorf("Original run was modified: %q", first.GetText())
	}
}

func TestMergeAllRunsVisitsTableCells(t *testing.T) {
	table := &xml.Table{Rows: []xml.TableRow{{Cells: []xml.TableCell{{
		Paragraphs: []xml.Paragraph{{Content: []xml.ParagraphContent{
			xml.NewTextRun("x", nil),
			xml.NewTextRun("y", nil),
		}}},
	}}}}}

	MergeAllRuns([]xml.BodyElement{table})

	if got := len(table.Rows[0].Cells[0].Paragraphs[0].Runs()); got != 1 {
		t.Errorf("Expected cell runs to be merged, got %d runs", got)
	}
}
