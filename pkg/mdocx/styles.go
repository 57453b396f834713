package mdocx

import (
	"fmt"
	"math"

	"github.com/benjaminschreck/go-mdocx/pkg/mdocx/xml"
)

// StyleKind identifies what a StyleSpec is resolved for
type StyleKind int

const (
	StyleHeading StyleKind = iota
	StyleParagraph
	StyleListItem
	StyleCodeLine
	StyleCodeBlock
	StyleTable
	StyleTableHeader
	StyleTableCell
	StyleBlockquote
	StyleRule
	StyleSpacer
	StyleTableSpacer
	StyleInline
)

func (k StyleKind) String() string {
	switch k {
	case StyleHeading:
		return "heading"
	case StyleParagraph:
		return "paragraph"
	case StyleListItem:
		return "list item"
	case StyleCodeLine:
		return "code line"
	case StyleCodeBlock:
		return "code block"
	case StyleTable:
		return "table"
	case StyleTableHeader:
		return "table header cell"
	case StyleTableCell:
		return "table body cell"
	case StyleBlockquote:
		return "blockquote"
	case StyleRule:
		return "rule"
	case StyleSpacer:
		return "spacer"
	case StyleTableSpacer:
		return "table spacer"
	case StyleInline:
		return "inline span"
	default:
		return "unknown"
	}
}

const (
	monospaceFont  = "Consolas"
	codeColor      = "2D3748"
	codeBackground = "F8FAFC"
	codeBorder     = "E2E8F0"
	inlineCodeFill = "F1F5F9"
	textColor      = "374151"
	quoteColor     = "4A5568"
	headerColor    = "1F2937"
	tableBorder    = "E2E8F0"
	tableInner     = "F1F5F9"
	bodySize       = 22
	codeLineHeight = 240
)

// BorderSpec describes one border line. A zero Size means no border.
type BorderSpec struct {
	Size  int // eighths of a point
	Space int // points
	Color string
}

// Borders groups the borders of a paragraph or table
type Borders struct {
	Top              BorderSpec
	Left             BorderSpec
	Bottom           BorderSpec
	Right            BorderSpec
	InsideHorizontal BorderSpec
	InsideVertical   BorderSpec
}

// Padding holds cell margins in twips
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// StyleSpec is the concrete visual style of one element kind in one theme.
// Sizes are half-points and lengths are twips.
type StyleSpec struct {
	// StyleID is the catalog paragraph style the element references, if any
	StyleID string

	Font      string
	Size      int
	Color     string
	Bold      bool
	Italic    bool
	Strike    bool
	Underline bool
	Alignment string
	// Shading is a background fill color
	Shading string

	SpacingBefore int
	SpacingAfter  int
	Line          int

	IndentLeft    int
	IndentRight   int
	IndentHanging int

	Borders Borders
	Padding Padding

	// OutlineLevel is the 0-based outline level for headings, -1 otherwise
	OutlineLevel int
}

// MillimetersToTwip converts millimeters to twips (1/1440 inch), rounding down
func MillimetersToTwip(mm float64) int {
	return int(math.Floor(mm / 25.4 * 72 * 20))
}

// InchesToTwip converts inches to twips, rounding down
func InchesToTwip(in float64) int {
	return int(math.Floor(in * 72 * 20))
}

// ResolveStyle maps a theme, a kind and (for headings) a level onto a style.
// Unknown themes resolve as DefaultTheme. Heading levels are clamped to 1..6
// and levels 4 to 6 share the level 3 style.
func ResolveStyle(theme Theme, kind StyleKind, level int) StyleSpec {
	p := theme.palette()
	spec := StyleSpec{OutlineLevel: -1}

	switch kind {
	case StyleHeading:
		level = clampLevel(level)
		idx := min(level, 3) - 1
		spec.StyleID = fmt.Sprintf("Heading%d", idx+1)
		spec.Font = p.font
		spec.Size = p.headingSizes[idx]
		spec.Color = p.headingColor[idx]
		spec.Bold = true
		spec.SpacingBefore = MillimetersToTwip([3]float64{12, 10, 8}[idx])
		spec.SpacingAfter = MillimetersToTwip([3]float64{6, 4, 3}[idx])
		spec.OutlineLevel = level - 1
		if idx == 0 {
			spec.Borders.Bottom = BorderSpec{Size: 6, Space: 1, Color: p.border}
		}

	case StyleParagraph:
		spec.SpacingBefore = MillimetersToTwip(3)
		spec.SpacingAfter = MillimetersToTwip(6)

	case StyleListItem:
		spec.Font = p.font
		spec.Size = bodySize
		spec.IndentLeft = MillimetersToTwip(12)
		spec.IndentHanging = MillimetersToTwip(6)
		spec.SpacingBefore = MillimetersToTwip(1)
		spec.SpacingAfter = MillimetersToTwip(1)

	case StyleCodeLine:
		spec.StyleID = "CodeBlock"
		spec.Font = monospaceFont
		spec.Size = 20
		spec.Color = codeColor
		spec.Line = codeLineHeight

	case StyleCodeBlock:
		spec.StyleID = "CodeBlock"
		spec.Font = monospaceFont
		spec.Size = 18
		spec.Color = codeColor
		spec.Shading = codeBackground
		spec.SpacingBefore = MillimetersToTwip(4)
		spec.SpacingAfter = MillimetersToTwip(4)
		spec.IndentLeft = MillimetersToTwip(8)
		spec.IndentRight = MillimetersToTwip(8)
		box := BorderSpec{Size: 2, Space: 1, Color: codeBorder}
		spec.Borders = Borders{Top: box, Left: box, Bottom: box, Right: box}

	case StyleTable:
		outer := BorderSpec{Size: 4, Color: tableBorder}
		inner := BorderSpec{Size: 2, Color: tableInner}
		spec.Borders = Borders{
			Top:              outer,
			Left:             outer,
			Bottom:           outer,
			Right:            outer,
			InsideHorizontal: inner,
			InsideVertical:   inner,
		}

	case StyleTableHeader:
		spec.Font = p.font
		spec.Size = bodySize
		spec.Color = headerColor
		spec.Bold = true
		spec.Alignment = "center"
		spec.Shading = p.tableHeader
		spec.Padding = cellPadding()

	case StyleTableCell:
		spec.Font = p.font
		spec.Size = 20
		spec.Padding = cellPadding()

	case StyleBlockquote:
		spec.StyleID = "Quote"
		spec.Font = p.font
		spec.Size = bodySize
		spec.Color = quoteColor
		spec.Italic = true
		spec.Shading = p.quoteTint
		spec.SpacingBefore = MillimetersToTwip(6)
		spec.SpacingAfter = MillimetersToTwip(6)
		spec.IndentLeft = MillimetersToTwip(15)
		spec.IndentRight = MillimetersToTwip(5)
		spec.Borders.Left = BorderSpec{Size: 12, Space: 1, Color: p.quoteBar}

	case StyleRule:
		spec.Color = p.rule
		spec.Alignment = "center"
		spec.SpacingBefore = MillimetersToTwip(8)
		spec.SpacingAfter = MillimetersToTwip(8)

	case StyleSpacer:
		spec.SpacingAfter = MillimetersToTwip(6)

	case StyleTableSpacer:
		spec.SpacingAfter = MillimetersToTwip(8)

	case StyleInline:
		spec.Font = p.font
		spec.Size = bodySize
		spec.Color = textColor
	}

	return spec
}

// SpanStyle resolves the run style of an inline span. Code spans use the
// monospace font and background fill in every theme.
func SpanStyle(theme Theme, format Format) StyleSpec {
	spec := ResolveStyle(theme, StyleInline, 0)
	spec.Bold = format.Has(Bold)
	spec.Italic = format.Has(Italic)
	spec.Strike = format.Has(Strike)
	spec.Underline = format.Has(Underline)
	if format.Has(Code) {
		spec.Font = monospaceFont
		spec.Color = codeColor
		spec.Shading = inlineCodeFill
	}
	return spec
}

func cellPadding() Padding {
	vertical, horizontal := MillimetersToTwip(3), MillimetersToTwip(4)
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// CatalogEntry is one paragraph style of the document's style catalog
type CatalogEntry struct {
	ID          string
	Name        string
	QuickFormat bool
	Spec        StyleSpec
}

// StyleCatalog returns the paragraph styles every document defines:
// Heading1, Heading2, Heading3, CodeBlock and Quote
func StyleCatalog(theme Theme) []CatalogEntry {
	return []CatalogEntry{
		{ID: "Heading1", Name: "Heading 1", QuickFormat: true, Spec: ResolveStyle(theme, StyleHeading, 1)},
		{ID: "Heading2", Name: "Heading 2", QuickFormat: true, Spec: ResolveStyle(theme, StyleHeading, 2)},
		{ID: "Heading3", Name: "Heading 3", QuickFormat: true, Spec: ResolveStyle(theme, StyleHeading, 3)},
		{ID: "CodeBlock", Name: "Code Block", Spec: ResolveStyle(theme, StyleCodeBlock, 0)},
		{ID: "Quote", Name: "Quote", Spec: ResolveStyle(theme, StyleBlockquote, 0)},
	}
}

// stylesPart builds word/styles.xml: a Normal base style followed by the catalog
func stylesPart(theme Theme) xml.Styles {
	p := theme.palette()
	styles := xml.Styles{
		DocDefaults: &xml.DocDefaults{
			RunProperties: &xml.RunProperties{
				Font: &xml.Font{ASCII: p.font},
				Size: &xml.Size{Val: bodySize},
			},
		},
		Styles: []xml.StyleDefinition{
			{Type: "paragraph", StyleID: "Normal", Name: "Normal", Default: true, QuickFormat: true},
		},
	}
	for _, entry := range StyleCatalog(theme) {
		styles.Styles = append(styles.Styles, xml.StyleDefinition{
			Type:                "paragraph",
			StyleID:             entry.ID,
			Name:                entry.Name,
			BasedOn:             "Normal",
			Next:                "Normal",
			QuickFormat:         entry.QuickFormat,
			ParagraphProperties: entry.Spec.paragraphProperties(false),
			RunProperties:       entry.Spec.runProperties(),
		})
	}
	return styles
}

// paragraphProperties converts the paragraph level fields of s.
// With withStyle set, the StyleID is referenced as pStyle.
func (s StyleSpec) paragraphProperties(withStyle bool) *xml.ParagraphProperties {
	props := &xml.ParagraphProperties{}
	empty := true

	if withStyle && s.StyleID != "" {
		props.Style = &xml.Style{Val: s.StyleID}
		empty = false
	}
	if b := s.Borders.paragraphBorders(); b != nil {
		props.Borders = b
		empty = false
	}
	if s.Shading != "" {
		props.Shading = xml.SolidFill(s.Shading)
		empty = false
	}
	if s.SpacingBefore != 0 || s.SpacingAfter != 0 || s.Line != 0 {
		props.Spacing = &xml.Spacing{Before: s.SpacingBefore, After: s.SpacingAfter, Line: s.Line}
		empty = false
	}
	if s.IndentLeft != 0 || s.IndentRight != 0 || s.IndentHanging != 0 {
		props.Indentation = &xml.Indentation{Left: s.IndentLeft, Right: s.IndentRight, Hanging: s.IndentHanging}
		empty = false
	}
	if s.Alignment != "" {
		props.Alignment = &xml.Alignment{Val: s.Alignment}
		empty = false
	}
	if s.OutlineLevel >= 0 {
		props.OutlineLevel = &xml.OutlineLevel{Val: s.OutlineLevel}
		props.KeepNext = true
		empty = false
	}

	if empty {
		return nil
	}
	return props
}

// runProperties converts the character level fields of s
func (s StyleSpec) runProperties() *xml.RunProperties {
	props := &xml.RunProperties{
		Bold:   s.Bold,
		Italic: s.Italic,
		Strike: s.Strike,
	}
	if s.Font != "" {
		props.Font = &xml.Font{ASCII: s.Font}
	}
	if s.Color != "" {
		props.Color = &xml.Color{Val: s.Color}
	}
	if s.Size != 0 {
		props.Size = &xml.Size{Val: s.Size}
	}
	if s.Underline {
		props.Underline = &xml.UnderlineStyle{Val: "single"}
	}
	if *props == (xml.RunProperties{}) {
		return nil
	}
	return props
}

// runPropertiesWithShading is runProperties plus the background fill
func (s StyleSpec) runPropertiesWithShading() *xml.RunProperties {
	props := s.runProperties()
	if s.Shading == "" {
		return props
	}
	if props == nil {
		props = &xml.RunProperties{}
	}
	props.Shading = xml.SolidFill(s.Shading)
	return props
}

func (b BorderSpec) border() *xml.Border {
	if b.Size == 0 {
		return nil
	}
	return &xml.Border{Val: "single", Size: b.Size, Space: b.Space, Color: b.Color}
}

func (b Borders) paragraphBorders() *xml.ParagraphBorders {
	pb := &xml.ParagraphBorders{
		Top:    b.Top.border(),
		Left:   b.Left.border(),
		Bottom: b.Bottom.border(),
		Right:  b.Right.border(),
	}
	if pb.Top == nil && pb.Left == nil && pb.Bottom == nil && pb.Right == nil {
		return nil
	}
	return pb
}

func (b Borders) tableBorders() *xml.TableBorders {
	return &xml.TableBorders{
		Top:              b.Top.border(),
		Left:             b.Left.border(),
		Bottom:           b.Bottom.border(),
		Right:            b.Right.border(),
		InsideHorizontal: b.InsideHorizontal.border(),
		InsideVertical:   b.InsideVertical.border(),
	}
}
