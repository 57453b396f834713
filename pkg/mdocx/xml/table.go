package xml

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Table represents a table in the document
type Table struct {
	Properties *TableProperties
	Grid       *TableGrid
	Rows       []TableRow
}

// isBodyElement implements the BodyElement interface
func (t Table) isBodyElement() {}

// MarshalXML implements custom XML marshaling for Table to ensure proper namespacing
func (t Table) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	// Start the table element with w: namespace
	start.Name = xml.Name{Local: "w:tbl"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if err := encodeOptional(e, t.Properties, "w:tblPr"); err != nil {
		return err
	}
	if err := encodeOptional(e, t.Grid, "w:tblGrid"); err != nil {
		return err
	}

	// Encode rows
	for i := range t.Rows {
		if err := e.EncodeElement(&t.Rows[i], xml.StartElement{Name: xml.Name{Local: "w:tr"}}); err != nil {
			return err
		}
	}

	// End the table element
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableProperties represents table formatting properties
type TableProperties struct {
	Width       *Width
	Borders     *TableBorders
	Layout      *TableLayout
	CellMargins *CellMargins
}

// MarshalXML implements custom XML marshaling for TableProperties
func (p TableProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tblPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if err := encodeOptional(e, p.Width, "w:tblW"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Borders, "w:tblBorders"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Layout, "w:tblLayout"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.CellMargins, "w:tblCellMar"); err != nil {
		return err
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Width represents a width with type (tblW, tcW)
type Width struct {
	W    int
	Type string // dxa, pct, auto
}

// PercentWidth returns a width expressed in fiftieths of a percent
func PercentWidth(percent int) *Width {
	return &Width{W: percent * 50, Type: "pct"}
}

// MarshalXML implements custom XML marshaling for Width
func (w Width) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if !strings.HasPrefix(start.Name.Local, "w:") {
		start.Name.Local = "w:" + start.Name.Local
	}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:w"}, Value: strconv.Itoa(w.W)},
		{Name: xml.Name{Local: "w:type"}, Value: w.Type},
	}
	return e.EncodeElement(struct{}{}, start)
}

// TableBorders represents the borders around and inside a table
type TableBorders struct {
	Top              *Border
	Left             *Border
	Bottom           *Border
	Right            *Border
	InsideHorizontal *Border
	InsideVertical   *Border
}

// MarshalXML implements custom XML marshaling for TableBorders
func (b TableBorders) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tblBorders"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, side := range []struct {
		name   string
		border *Border
	}{
		{"w:top", b.Top},
		{"w:left", b.Left},
		{"w:bottom", b.Bottom},
		{"w:right", b.Right},
		{"w:insideH", b.InsideHorizontal},
		{"w:insideV", b.InsideVertical},
	} {
		if err := encodeOptional(e, side.border, side.name); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableLayout represents table layout
type TableLayout struct {
	Type string // fixed, autofit
}

// MarshalXML implements custom XML marshaling for TableLayout
func (l TableLayout) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tblLayout"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:type"}, Value: l.Type},
	}
	return e.EncodeElement(struct{}{}, start)
}

// CellMargins represents cell margins in twips (tblCellMar, tcMar)
type CellMargins struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// MarshalXML implements custom XML marshaling for CellMargins
func (m CellMargins) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if !strings.HasPrefix(start.Name.Local, "w:") {
		start.Name.Local = "w:" + start.Name.Local
	}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, side := range []struct {
		name string
		w    int
	}{
		{"w:top", m.Top},
		{"w:left", m.Left},
		{"w:bottom", m.Bottom},
		{"w:right", m.Right},
	} {
		if err := e.EncodeElement(Width{W: side.w, Type: "dxa"}, xml.StartElement{Name: xml.Name{Local: side.name}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableGrid represents the table grid
type TableGrid struct {
	Columns []GridColumn
}

// GridColumn represents a grid column
type GridColumn struct {
	Width int
}

// MarshalXML implements custom XML marshaling for TableGrid
func (g TableGrid) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tblGrid"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, col := range g.Columns {
		gridCol := xml.StartElement{
			Name: xml.Name{Local: "w:gridCol"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "w:w"}, Value: strconv.Itoa(col.Width)}},
		}
		if err := e.EncodeElement(struct{}{}, gridCol); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableRow represents a table row
type TableRow struct {
	Properties *TableRowProperties
	Cells      []TableCell
}

// MarshalXML implements custom XML marshaling for TableRow
func (r TableRow) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeOptional(e, r.Properties, "w:trPr"); err != nil {
		return err
	}
	for i := range r.Cells {
		if err := e.EncodeElement(&r.Cells[i], xml.StartElement{Name: xml.Name{Local: "w:tc"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableRowProperties represents table row properties
type TableRowProperties struct {
	// Header repeats the row at the top of each page
	Header bool
}

// MarshalXML implements custom XML marshaling for TableRowProperties
func (p TableRowProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:trPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeFlag(e, p.Header, "w:tblHeader"); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableCell represents a table cell
type TableCell struct {
	Properties *TableCellProperties
	Paragraphs []Paragraph
}

// MarshalXML implements custom XML marshaling for TableCell.
// A cell must end with a paragraph, so an empty one is written for empty cells.
func (c TableCell) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tc"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeOptional(e, c.Properties, "w:tcPr"); err != nil {
		return err
	}
	paragraphs := c.Paragraphs
	if len(paragraphs) == 0 {
		paragraphs = []Paragraph{{}}
	}
	for i := range paragraphs {
		if err := e.EncodeElement(&paragraphs[i], xml.StartElement{Name: xml.Name{Local: "w:p"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GetText returns the text content of a table cell
func (c *TableCell) GetText() string {
	texts := make([]string, 0, len(c.Paragraphs))
	for i := range c.Paragraphs {
		texts = append(texts, c.Paragraphs[i].GetText())
	}
	return strings.Join(texts, "\n")
}

// TableCellProperties represents cell properties
type TableCellProperties struct {
	Width   *Width
	Shading *Shading
	Margins *CellMargins
}

// MarshalXML implements custom XML marshaling for TableCellProperties
func (p TableCellProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tcPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Width, "w:tcW"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Shading, "w:shd"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Margins, "w:tcMar"); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}
