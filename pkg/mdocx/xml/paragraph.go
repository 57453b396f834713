package xml

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Paragraph represents a paragraph in the document
type Paragraph struct {
	Properties *ParagraphProperties
	// Content maintains the order of runs
	Content []ParagraphContent
}

// isBodyElement implements the BodyElement interface
func (p Paragraph) isBodyElement() {}

// NewTextParagraph returns an unstyled paragraph holding a single run of text
func NewTextParagraph(text string) *Paragraph {
	return &Paragraph{Content: []ParagraphContent{NewTextRun(text, nil)}}
}

// MarshalXML implements custom XML marshaling for Paragraph to ensure proper namespacing
func (p Paragraph) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:p"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if err := encodeOptional(e, p.Properties, "w:pPr"); err != nil {
		return err
	}

	for _, content := range p.Content {
		switch c := content.(type) {
		case *Run:
			if err := e.EncodeElement(c, xml.StartElement{Name: xml.Name{Local: "w:r"}}); err != nil {
				return err
			}
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Runs returns the runs of the paragraph in order
func (p *Paragraph) Runs() []*Run {
	runs := make([]*Run, 0, len(p.Content))
	for _, content := range p.Content {
		if run, ok := content.(*Run); ok {
			runs = append(runs, run)
		}
	}
	return runs
}

// GetText returns the concatenated text of all runs in a paragraph.
// Breaks are reported as newlines.
func (p *Paragraph) GetText() string {
	var b strings.Builder
	for _, run := range p.Runs() {
		if run.Break != nil {
			b.WriteByte('\n')
		}
		b.WriteString(run.GetText())
	}
	return b.String()
}

// StyleID returns the referenced paragraph style, or "" when none is set
func (p *Paragraph) StyleID() string {
	if p.Properties == nil || p.Properties.Style == nil {
		return ""
	}
	return p.Properties.Style.Val
}

// ParagraphProperties represents paragraph formatting properties.
// Fields are written in the order required by the WordprocessingML schema.
type ParagraphProperties struct {
	Style         *Style
	KeepNext      bool
	Borders       *ParagraphBorders
	Shading       *Shading
	Spacing       *Spacing
	Indentation   *Indentation
	Alignment     *Alignment
	OutlineLevel  *OutlineLevel
	RunProperties *RunProperties // Default run properties for paragraph mark
}

// MarshalXML implements custom XML marshaling for ParagraphProperties
func (p ParagraphProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:pPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if err := encodeOptional(e, p.Style, "w:pStyle"); err != nil {
		return err
	}
	if err := encodeFlag(e, p.KeepNext, "w:keepNext"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Borders, "w:pBdr"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Shading, "w:shd"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Spacing, "w:spacing"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Indentation, "w:ind"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Alignment, "w:jc"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.OutlineLevel, "w:outlineLvl"); err != nil {
		return err
	}
	// Output run properties last (sets defaults for the paragraph mark)
	if err := encodeOptional(e, p.RunProperties, "w:rPr"); err != nil {
		return err
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// ParagraphBorders represents the w:pBdr element
type ParagraphBorders struct {
	Top    *Border
	Left   *Border
	Bottom *Border
	Right  *Border
}

// MarshalXML implements custom XML marshaling for ParagraphBorders
func (b ParagraphBorders) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:pBdr"}
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
	} {
		if err := encodeOptional(e, side.border, side.name); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Alignment represents text alignment
type Alignment struct {
	Val string `xml:"val,attr"`
}

// MarshalXML implements custom XML marshaling for Alignment
func (a Alignment) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:jc"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:val"}, Value: a.Val},
	}
	return e.EncodeElement(struct{}{}, start)
}

// OutlineLevel marks a paragraph as part of the document outline (0-based)
type OutlineLevel struct {
	Val int
}

// MarshalXML implements custom XML marshaling for OutlineLevel
func (o OutlineLevel) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:outlineLvl"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:val"}, Value: strconv.Itoa(o.Val)},
	}
	return e.EncodeElement(struct{}{}, start)
}

// Indentation represents paragraph indentation in twips
type Indentation struct {
	Left    int
	Right   int
	Hanging int
}

// MarshalXML implements custom XML marshaling for Indentation
func (i Indentation) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:ind"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:left"}, Value: strconv.Itoa(i.Left)},
		{Name: xml.Name{Local: "w:right"}, Value: strconv.Itoa(i.Right)},
	}
	if i.Hanging != 0 {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:hanging"}, Value: strconv.Itoa(i.Hanging)})
	}
	return e.EncodeElement(struct{}{}, start)
}

// Spacing represents paragraph spacing in twips.
// Before and After are always written; zero overrides the style's spacing.
type Spacing struct {
	Before   int
	After    int
	Line     int
	LineRule string
}

// MarshalXML implements custom XML marshaling for Spacing
func (s Spacing) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:spacing"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:before"}, Value: strconv.Itoa(s.Before)},
		{Name: xml.Name{Local: "w:after"}, Value: strconv.Itoa(s.After)},
	}
	if s.Line != 0 {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:line"}, Value: strconv.Itoa(s.Line)})
		rule := s.LineRule
		if rule == "" {
			rule = "auto"
		}
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:lineRule"}, Value: rule})
	}

	// Self-closing element
	return e.EncodeElement(struct{}{}, start)
}
