package render

import (
	"reflect"

	"github.com/benjaminschreck/go-mdocx/pkg/mdocx/xml"
)

// runPropertiesEquivalent checks if two run properties are equivalent for merging purposes
// This is important to preserve formatting like bold, italic, etc.
func runPropertiesEquivalent(p1, p2 *xml.RunProperties) bool {
	// If both are nil, they're equivalent
	if p1 == nil && p2 == nil {
		return true
	}

	// If one is nil and the other isn't, they're not equivalent
	if (p1 == nil) != (p2 == nil) {
		return false
	}

	// Use reflect.DeepEqual to compare the properties
	// This will check all fields including Bold, Italic, Underline, etc.
	return reflect.DeepEqual(p1, p2)
}

// MergeConsecutiveRuns merges consecutive runs in a paragraph that share the same properties.
// Runs starting with a break are never merged into the previous run.
func MergeConsecutiveRuns(para *xml.Paragraph) {
	if para == nil || len(para.Content) <= 1 {
		return
	}

	merged := make([]xml.ParagraphContent, 0, len(para.Content))
	var current *xml.Run

	for _, content := range para.Content {
		run, ok := content.(*xml.Run)
		if !ok {
			// Unknown content ends the current merge window
			if current != nil {
				merged = append(merged, current)
				current = nil
			}
			merged = append(merged, content)
			continue
		}

		if current != nil && canMerge(current, run) {
			current.Text = xml.NewText(current.Text.Content + run.Text.Content)
			continue
		}

		if current != nil {
			merged = append(merged, current)
		}
		// Copy so merging never mutates the caller's run
		copied := *run
		if run.Text != nil {
			text := *run.Text
			copied.Text = &text
		}
		current = &copied
	}

	if current != nil {
		merged = append(merged, current)
	}

	para.Content = merged
}

func canMerge(prev, next *xml.Run) bool {
	if prev.Text == nil || next.Text == nil || next.Break != nil {
		return false
	}
	return runPropertiesEquivalent(prev.Properties, next.Properties)
}

// MergeAllRuns applies MergeConsecutiveRuns to every paragraph in body order,
// including paragraphs inside table cells.
func MergeAllRuns(elements []xml.BodyElement) {
	for _, elem := range elements {
		switch el := elem.(type) {
		case *xml.Paragraph:
			MergeConsecutiveRuns(el)
		case *xml.Table:
			for i := range el.Rows {
				for j := range el.Rows[i].Cells {
					cell := &el.Rows[i].Cells[j]
					for k := range cell.Paragraphs {
						MergeConsecutiveRuns(&cell.Paragraphs[k])
					}
				}
			}
		}
	}
}
