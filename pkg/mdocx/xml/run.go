package xml

import (
	"encoding/xml"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Run represents a run of text with common properties
type Run struct {
	Properties *RunProperties
	// Break is written before Text, so a run can start a new line
	Break *Break
	Text  *Text
}

// isParagraphContent implements the ParagraphContent interface
func (r Run) isParagraphContent() {}

// NewTextRun creates a run, preserving leading and trailing whitespace
func NewTextRun(text string, props *RunProperties) *Run {
	return &Run{Properties: props, Text: NewText(text)}
}

// MarshalXML implements custom XML marshaling for Run to ensure proper namespacing
func (r Run) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:r"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if err := encodeOptional(e, r.Properties, "w:rPr"); err != nil {
		return err
	}
	if err := encodeOptional(e, r.Break, "w:br"); err != nil {
		return err
	}
	if err := encodeOptional(e, r.Text, "w:t"); err != nil {
		return err
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GetText returns the text content of a run
func (r *Run) GetText() string {
	if r.Text == nil {
		return ""
	}
	return r.Text.Content
}

// RunProperties represents run formatting properties.
// Fields are written in the order required by the WordprocessingML schema.
type RunProperties struct {
	Style     *Style
	Font      *Font
	Bold      bool
	Italic    bool
	Strike    bool
	Color     *Color
	Size      *Size
	Underline *UnderlineStyle
	Shading   *Shading
}

// MarshalXML implements custom XML marshaling for RunProperties
func (p RunProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:rPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if err := encodeOptional(e, p.Style, "w:rStyle"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Font, "w:rFonts"); err != nil {
		return err
	}
	if err := encodeFlag(e, p.Bold, "w:b"); err != nil {
		return err
	}
	if err := encodeFlag(e, p.Bold, "w:bCs"); err != nil {
		return err
	}
	if err := encodeFlag(e, p.Italic, "w:i"); err != nil {
		return err
	}
	if err := encodeFlag(e, p.Italic, "w:iCs"); err != nil {
		return err
	}
	if err := encodeFlag(e, p.Strike, "w:strike"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Color, "w:color"); err != nil {
		return err
	}
	if p.Size != nil {
		// Complex script size mirrors the regular size
		if err := e.EncodeElement(p.Size, xml.StartElement{Name: xml.Name{Local: "w:sz"}}); err != nil {
			return err
		}
		if err := e.EncodeElement(p.Size, xml.StartElement{Name: xml.Name{Local: "w:szCs"}}); err != nil {
			return err
		}
	}
	if err := encodeOptional(e, p.Underline, "w:u"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Shading, "w:shd"); err != nil {
		return err
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Text represents text content
type Text struct {
	Space   string
	Content string
}

// NewText returns a Text, marking it space-preserving when the content
// starts or ends with whitespace
func NewText(content string) *Text {
	t := &Text{Content: content}
	if content == "" {
		return t
	}
	first, _ := utf8.DecodeRuneInString(content)
	last, _ := utf8.DecodeLastRuneInString(content)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		t.Space = "preserve"
	}
	return t
}

// MarshalXML implements custom XML marshaling for Text to ensure proper namespacing
func (t Text) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:t"}
	start.Attr = nil
	if t.Space == "preserve" {
		// Use the predefined XML namespace
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Space: xmlNamespace, Local: "space"},
			Value: "preserve",
		})
	}
	return e.EncodeElement(t.Content, start)
}

// Break represents a line break
type Break struct {
	Type string
}

// MarshalXML implements xml.Marshaler to ensure Break is self-closing
func (b Break) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:br"}
	start.Attr = nil
	if b.Type != "" {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: "w:type"},
			Value: b.Type,
		})
	}
	// Encode as an empty element (self-closing)
	return e.EncodeElement(struct{}{}, start)
}

// Color represents text color
type Color struct {
	Val string
}

// MarshalXML implements custom XML marshaling for Color
func (c Color) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:color"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:val"}, Value: c.Val},
	}
	return e.EncodeElement(struct{}{}, start)
}

// Size represents font size in half-points
type Size struct {
	Val int
}

// MarshalXML implements custom XML marshaling for Size
func (s Size) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	// Ensure the element has the w: prefix if it doesn't already
	if !strings.HasPrefix(start.Name.Local, "w:") {
		start.Name.Local = "w:" + start.Name.Local
	}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:val"}, Value: strconv.Itoa(s.Val)},
	}
	return e.EncodeElement(struct{}{}, start)
}

// Font represents font information
type Font struct {
	ASCII string
}

// MarshalXML implements custom XML marshaling for Font.
// The same family is used for every script slot.
func (f Font) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:rFonts"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:ascii"}, Value: f.ASCII},
		{Name: xml.Name{Local: "w:hAnsi"}, Value: f.ASCII},
		{Name: xml.Name{Local: "w:cs"}, Value: f.ASCII},
	}
	return e.EncodeElement(struct{}{}, start)
}

// UnderlineStyle represents underline formatting
type UnderlineStyle struct {
	Val string
}

// MarshalXML implements custom XML marshaling for UnderlineStyle
func (u UnderlineStyle) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:u"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:val"}, Value: u.Val},
	}
	return e.EncodeElement(struct{}{}, start)
}
