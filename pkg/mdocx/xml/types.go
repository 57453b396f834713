package xml

import (
	"encoding/xml"
	"strconv"
)

const (
	// NamespaceW is the main WordprocessingML namespace.
	NamespaceW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	// NamespaceR is the officeDocument relationships namespace.
	NamespaceR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	xmlNamespace = "http://www.w3.org/XML/1998/namespace"
)

// BodyElement represents any element that can appear in a document body
type BodyElement interface {
	isBodyElement()
}

// ParagraphContent represents any content that can appear in a paragraph
type ParagraphContent interface {
	isParagraphContent()
}

// Empty represents an empty element (used for boolean properties)
type Empty struct{}

// MarshalXML writes a self-closing element under the name chosen by the parent
func (Empty) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = nil
	return e.EncodeElement(struct{}{}, start)
}

// Style represents a style reference
type Style struct {
	Val string `xml:"val,attr"`
}

// MarshalXML implements custom XML marshaling for Style
func (s Style) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	// The element name depends on the context (pStyle, basedOn, next, ...)
	// so we keep the provided name
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:val"}, Value: s.Val},
	}
	return e.EncodeElement(struct{}{}, start)
}

// Border describes a single border line
type Border struct {
	Val   string // single, double, nil, ...
	Size  int    // eighths of a point
	Space int    // points
	Color string // hex RGB without '#'
}

// MarshalXML implements custom XML marshaling for Border
func (b Border) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	val := b.Val
	if val == "" {
		val = "single"
	}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:val"}, Value: val},
		{Name: xml.Name{Local: "w:sz"}, Value: strconv.Itoa(b.Size)},
		{Name: xml.Name{Local: "w:space"}, Value: strconv.Itoa(b.Space)},
	}
	if b.Color != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:color"}, Value: b.Color})
	}
	return e.EncodeElement(struct{}{}, start)
}

// Shading represents background shading of a paragraph, run or cell
type Shading struct {
	Val   string
	Color string
	Fill  string
}

// SolidFill returns shading that paints the background with a single color
func SolidFill(color string) *Shading {
	return &Shading{Val: "clear", Color: "auto", Fill: color}
}

// MarshalXML implements custom XML marshaling for Shading
func (s Shading) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:shd"}
	val := s.Val
	if val == "" {
		val = "clear"
	}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:val"}, Value: val},
	}
	if s.Color != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:color"}, Value: s.Color})
	}
	if s.Fill != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:fill"}, Value: s.Fill})
	}
	return e.EncodeElement(struct{}{}, start)
}

// encodeOptional encodes v under name when v is non-nil
func encodeOptional[T any](e *xml.Encoder, v *T, name string) error {
	if v == nil {
		return nil
	}
	return e.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: name}})
}

// encodeFlag encodes an empty element when set is true
func encodeFlag(e *xml.Encoder, set bool, name string) error {
	if !set {
		return nil
	}
	return e.EncodeElement(Empty{}, xml.StartElement{Name: xml.Name{Local: name}})
}

// MarshalPart renders a part root (Document, Styles) with the XML declaration prepended
func MarshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(data))
	out = append(out, xml.Header...)
	return append(out, data...), nil
}
