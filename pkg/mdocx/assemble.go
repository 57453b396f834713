package mdocx

import (
	"strconv"
	"strings"

	"github.com/benjaminschreck/go-mdocx/pkg/mdocx/render"
	"github.com/benjaminschreck/go-mdocx/pkg/mdocx/xml"
)

// ruleGlyph is the text of a horizontal rule paragraph
var ruleGlyph = strings.Repeat("_", 47)

const bulletMarker = "•"

// pageMargin is the margin on every side of the single A4 section
var pageMargin = InchesToTwip(1)

// Assemble turns parsed elements into body blocks in source order.
// It never fails; elements without content produce no blocks.
func Assemble(elements []ParsedElement, opts Options) []xml.BodyElement {
	a := &assembler{
		theme:  opts.theme(),
		format: FormatInline,
	}
	if opts.LegacyInline {
		a.format = FormatInlineLegacy
	}

	for _, el := range elements {
		switch e := el.(type) {
		case Heading:
			a.heading(e)
		case Paragraph:
			a.paragraph(e)
		case List:
			a.list(e)
		case CodeBlock:
			a.code(e)
		case Table:
			a.table(e)
		case Blockquote:
			a.blockquote(e)
		case Rule:
			a.rule()
		default:
			Debug("skipping unsupported element %T", el)
		}
	}

	render.MergeAllRuns(a.blocks)
	return a.blocks
}

type assembler struct {
	theme  Theme
	format func(string) []StyledSpan
	blocks []xml.BodyElement
}

func (a *assembler) add(block xml.BodyElement) {
	a.blocks = append(a.blocks, block)
}

func (a *assembler) heading(h Heading) {
	spec := ResolveStyle(a.theme, StyleHeading, h.Level)
	props := &xml.ParagraphProperties{
		Style:   &xml.Style{Val: spec.StyleID},
		Spacing: &xml.Spacing{Before: spec.SpacingBefore, After: spec.SpacingAfter},
	}
	// Heading4..6 borrow the Heading3 style, so their outline level is set directly
	if h.Level > 3 {
		props.OutlineLevel = &xml.OutlineLevel{Val: spec.OutlineLevel}
	}
	a.add(&xml.Paragraph{
		Properties: props,
		Content:    textRuns(h.Text, nil),
	})
}

func (a *assembler) paragraph(p Paragraph) {
	text := strings.TrimSpace(p.Text)
	if text == "" {
		return
	}

	var content []xml.ParagraphContent
	for _, span := range a.format(text) {
		props := SpanStyle(a.theme, span.Format).runPropertiesWithShading()
		content = append(content, textRuns(span.Text, props)...)
	}

	a.add(&xml.Paragraph{
		Properties: ResolveStyle(a.theme, StyleParagraph, 0).paragraphProperties(true),
		Content:    content,
	})
}

func (a *assembler) list(l List) {
	if len(l.Items) == 0 {
		return
	}

	spec := ResolveStyle(a.theme, StyleListItem, 0)
	for i, item := range l.Items {
		marker := bulletMarker
		if l.Ordered {
			marker = strconv.Itoa(i+1) + "."
		}
		a.add(&xml.Paragraph{
			Properties: spec.paragraphProperties(true),
			Content:    textRuns(marker+" "+item, spec.runProperties()),
		})
	}
	a.spacer(StyleSpacer)
}

func (a *assembler) code(c CodeBlock) {
	lines := NormalizeCode(strings.Split(c.Text, "\n"), c.Language)
	if len(lines) == 0 {
		return
	}

	spec := ResolveStyle(a.theme, StyleCodeLine, 0)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			// Blank lines keep their height
			line = " "
		}
		props := spec.paragraphProperties(true)
		// Code lines sit flush against each other
		props.Spacing = &xml.Spacing{Before: 0, After: 0, Line: spec.Line}
		a.add(&xml.Paragraph{
			Properties: props,
			Content:    []xml.ParagraphContent{xml.NewTextRun(line, spec.runProperties())},
		})
	}
	a.spacer(StyleSpacer)
}

func (a *assembler) table(t Table) {
	columns := render.ColumnCount(t.Headers, t.Rows)
	if columns == 0 {
		return
	}

	section := xml.A4Section(pageMargin)
	widths := render.GridWidths(section.ContentWidth(), columns)

	grid := &xml.TableGrid{}
	for _, w := range widths {
		grid.Columns = append(grid.Columns, xml.GridColumn{Width: w})
	}

	table := &xml.Table{
		Properties: &xml.TableProperties{
			Width:   xml.PercentWidth(100),
			Borders: ResolveStyle(a.theme, StyleTable, 0).Borders.tableBorders(),
		},
		Grid: grid,
	}

	if len(t.Headers) > 0 {
		headers := render.PadRows([][]string{t.Headers}, columns)[0]
		table.Rows = append(table.Rows, xml.TableRow{
			Properties: &xml.TableRowProperties{Header: true},
			Cells:      a.cells(headers, widths, ResolveStyle(a.theme, StyleTableHeader, 0)),
		})
	}
	body := ResolveStyle(a.theme, StyleTableCell, 0)
	for _, row := range render.PadRows(t.Rows, columns) {
		table.Rows = append(table.Rows, xml.TableRow{Cells: a.cells(row, widths, body)})
	}

	a.add(table)
	a.spacer(StyleTableSpacer)
}

func (a *assembler) cells(texts []string, widths []int, spec StyleSpec) []xml.TableCell {
	cells := make([]xml.TableCell, len(texts))
	for i, text := range texts {
		props := &xml.TableCellProperties{
			Width: &xml.Width{W: widths[i], Type: "dxa"},
			Margins: &xml.CellMargins{
				Top:    spec.Padding.Top,
				Left:   spec.Padding.Left,
				Bottom: spec.Padding.Bottom,
				Right:  spec.Padding.Right,
			},
		}
		if spec.Shading != "" {
			props.Shading = xml.SolidFill(spec.Shading)
		}

		para := xml.Paragraph{}
		if spec.Alignment != "" {
			para.Properties = &xml.ParagraphProperties{Alignment: &xml.Alignment{Val: spec.Alignment}}
		}
		if text != "" {
			para.Content = textRuns(text, spec.runProperties())
		}

		cells[i] = xml.TableCell{Properties: props, Paragraphs: []xml.Paragraph{para}}
	}
	return cells
}

func (a *assembler) blockquote(q Blockquote) {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return
	}
	spec := ResolveStyle(a.theme, StyleBlockquote, 0)
	a.add(&xml.Paragraph{
		Properties: &xml.ParagraphProperties{Style: &xml.Style{Val: spec.StyleID}},
		Content:    textRuns(text, spec.runProperties()),
	})
}

func (a *assembler) rule() {
	spec := ResolveStyle(a.theme, StyleRule, 0)
	a.add(&xml.Paragraph{
		Properties: spec.paragraphProperties(true),
		Content:    []xml.ParagraphContent{xml.NewTextRun(ruleGlyph, spec.runProperties())},
	})
}

// spacer adds an empty paragraph that only carries spacing after
func (a *assembler) spacer(kind StyleKind) {
	spec := ResolveStyle(a.theme, kind, 0)
	a.add(&xml.Paragraph{Properties: spec.paragraphProperties(true)})
}

// textRuns splits text at newlines into runs sharing props, each continuation
// line starting with a break
func textRuns(text string, props *xml.RunProperties) []xml.ParagraphContent {
	lines := strings.Split(text, "\n")
	runs := make([]xml.ParagraphContent, 0, len(lines))
	for i, line := range lines {
		run := xml.NewTextRun(line, props)
		if i > 0 {
			run.Break = &xml.Break{}
		}
		runs = append(runs, run)
	}
	return runs
}
