package mdocx

import (
	"fmt"
	"strings"

	"github.com/benjaminschreck/go-mdocx/pkg/mdocx/xml"
)

// Outline describes assembled blocks one line per block, for previews and debugging.
// Paragraphs print as "<style>: <text>", unstyled empty paragraphs as "spacer"
// and tables by their dimensions.
func Outline(blocks []xml.BodyElement) []string {
	lines := make([]string, 0, len(blocks))
	for _, block := range blocks {
		switch b := block.(type) {
		case *xml.Paragraph:
			lines = append(lines, outlineParagraph(b))
		case *xml.Table:
			lines = append(lines, outlineTable(b))
		default:
			lines = append(lines, fmt.Sprintf("%T", block))
		}
	}
	return lines
}

func outlineParagraph(p *xml.Paragraph) string {
	text := strings.ReplaceAll(p.GetText(), "\n", `\n`)
	style := p.StyleID()
	switch {
	case style != "":
		return style + ": " + text
	case text == "":
		return "spacer"
	default:
		return "paragraph: " + text
	}
}

func outlineTable(t *xml.Table) string {
	columns := 0
	if t.Grid != nil {
		columns = len(t.Grid.Columns)
	}
	header := ""
	if len(t.Rows) > 0 && t.Rows[0].Properties != nil && t.Rows[0].Properties.Header {
		header = ", header"
	}
	return fmt.Sprintf("table: %d rows x %d columns%s", len(t.Rows), columns, header)
}
