package xml

import (
	"encoding/xml"
	"strconv"
)

// SectionProperties describes the page layout of the (single) document section
type SectionProperties struct {
	PageSize   PageSize
	PageMargin PageMargin
}

// PageSize is the page dimension in twips
type PageSize struct {
	Width  int
	Height int
}

// PageMargin holds page margins in twips
type PageMargin struct {
	Top    int
	Right  int
	Bottom int
	Left   int
	Header int
	Footer int
	Gutter int
}

// A4Section returns an A4 portrait section with equal margins on every side
func A4Section(margin int) *SectionProperties {
	return &SectionProperties{
		PageSize: PageSize{Width: 11906, Height: 16838},
		PageMargin: PageMargin{
			Top:    margin,
			Right:  margin,
			Bottom: margin,
			Left:   margin,
			Header: 708,
			Footer: 708,
		},
	}
}

// MarshalXML implements custom XML marshaling for SectionProperties
func (s SectionProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:sectPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	pgSz := xml.StartElement{
		Name: xml.Name{Local: "w:pgSz"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "w:w"}, Value: strconv.Itoa(s.PageSize.Width)},
			{Name: xml.Name{Local: "w:h"}, Value: strconv.Itoa(s.PageSize.Height)},
		},
	}
	if err := e.EncodeElement(struct{}{}, pgSz); err != nil {
		return err
	}

	m := s.PageMargin
	pgMar := xml.StartElement{
		Name: xml.Name{Local: "w:pgMar"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "w:top"}, Value: strconv.Itoa(m.Top)},
			{Name: xml.Name{Local: "w:right"}, Value: strconv.Itoa(m.Right)},
			{Name: xml.Name{Local: "w:bottom"}, Value: strconv.Itoa(m.Bottom)},
			{Name: xml.Name{Local: "w:left"}, Value: strconv.Itoa(m.Left)},
			{Name: xml.Name{Local: "w:header"}, Value: strconv.Itoa(m.Header)},
			{Name: xml.Name{Local: "w:footer"}, Value: strconv.Itoa(m.Footer)},
			{Name: xml.Name{Local: "w:gutter"}, Value: strconv.Itoa(m.Gutter)},
		},
	}
	if err := e.EncodeElement(struct{}{}, pgMar); err != nil {
		return err
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// ContentWidth returns the usable text width of the section in twips
func (s SectionProperties) ContentWidth() int {
	return s.PageSize.Width - s.PageMargin.Left - s.PageMargin.Right
}
