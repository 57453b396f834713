package xml

import (
	"encoding/xml"
)

// Styles represents the root of word/styles.xml
type Styles struct {
	DocDefaults *DocDefaults
	Styles      []StyleDefinition
}

// MarshalXML writes the w:styles root with its namespace declaration
func (s Styles) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:styles"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "xmlns:w"}, Value: NamespaceW},
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if err := encodeOptional(e, s.DocDefaults, "w:docDefaults"); err != nil {
		return err
	}
	for i := range s.Styles {
		if err := e.EncodeElement(&s.Styles[i], xml.StartElement{Name: xml.Name{Local: "w:style"}}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Find returns the style definition with the given ID, or nil
func (s *Styles) Find(styleID string) *StyleDefinition {
	for i := range s.Styles {
		if s.Styles[i].StyleID == styleID {
			return &s.Styles[i]
		}
	}
	return nil
}

// DocDefaults holds the run and paragraph defaults every style inherits
type DocDefaults struct {
	RunProperties       *RunProperties
	ParagraphProperties *ParagraphProperties
}

// MarshalXML implements custom XML marshaling for DocDefaults
func (d DocDefaults) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:docDefaults"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if d.RunProperties != nil {
		if err := wrap(e, "w:rPrDefault", d.RunProperties, "w:rPr"); err != nil {
			return err
		}
	}
	if d.ParagraphProperties != nil {
		if err := wrap(e, "w:pPrDefault", d.ParagraphProperties, "w:pPr"); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

func wrap(e *xml.Encoder, outer string, v any, inner string) error {
	start := xml.StartElement{Name: xml.Name{Local: outer}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: inner}}); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// StyleDefinition is a single w:style entry
type StyleDefinition struct {
	Type        string // paragraph, character, table
	StyleID     string
	Name        string
	Default     bool
	BasedOn     string
	Next        string
	QuickFormat bool

	ParagraphProperties *ParagraphProperties
	RunProperties       *RunProperties
}

// MarshalXML implements custom XML marshaling for StyleDefinition
func (s StyleDefinition) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:style"}
	styleType := s.Type
	if styleType == "" {
		styleType = "paragraph"
	}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "w:type"}, Value: styleType},
	}
	if s.Default {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:default"}, Value: "1"})
	}
	start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "w:styleId"}, Value: s.StyleID})
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	name := s.Name
	if name == "" {
		name = s.StyleID
	}
	if err := e.EncodeElement(Style{Val: name}, xml.StartElement{Name: xml.Name{Local: "w:name"}}); err != nil {
		return err
	}
	if s.BasedOn != "" {
		if err := e.EncodeElement(Style{Val: s.BasedOn}, xml.StartElement{Name: xml.Name{Local: "w:basedOn"}}); err != nil {
			return err
		}
	}
	if s.Next != "" {
		if err := e.EncodeElement(Style{Val: s.Next}, xml.StartElement{Name: xml.Name{Local: "w:next"}}); err != nil {
			return err
		}
	}
	if err := encodeFlag(e, s.QuickFormat, "w:qFormat"); err != nil {
		return err
	}
	if err := encodeOptional(e, s.ParagraphProperties, "w:pPr"); err != nil {
		return err
	}
	if err := encodeOptional(e, s.RunProperties, "w:rPr"); err != nil {
		return err
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}
