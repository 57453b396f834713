package xml

import (
	"encoding/xml"
	"strconv"
)

const (
	// NamespaceRelationships is the package relationships namespace
	NamespaceRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	// NamespaceContentTypes is the [Content_Types].xml namespace
	NamespaceContentTypes = "http://schemas.openxmlformats.org/package/2006/content-types"
	// NamespaceExtendedProperties is the docProps/app.xml namespace
	NamespaceExtendedProperties = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"

	namespaceCoreProperties = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	namespaceDublinCore     = "http://purl.org/dc/elements/1.1/"
	namespaceDCTerms        = "http://purl.org/dc/terms/"
	namespaceXSI            = "http://www.w3.org/2001/XMLSchema-instance"
)

// Relationship types used by a word-processing package
const (
	RelTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RelTypeSettings       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	RelTypeCoreProperties = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelTypeExtended       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
)

// Relationship represents a single relationship
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// Relationships represents the collection of relationships of a .rels part
type Relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Namespace    string         `xml:"xmlns,attr"`
	Relationship []Relationship `xml:"Relationship"`
}

// NewRelationships returns a relationship part holding rels with IDs rId1, rId2, ...
func NewRelationships(rels ...Relationship) *Relationships {
	r := &Relationships{Namespace: NamespaceRelationships}
	for i, rel := range rels {
		if rel.ID == "" {
			rel.ID = "rId" + strconv.Itoa(i+1)
		}
		r.Relationship = append(r.Relationship, rel)
	}
	return r
}

// ContentTypes represents [Content_Types].xml
type ContentTypes struct {
	XMLName   xml.Name              `xml:"Types"`
	Namespace string                `xml:"xmlns,attr"`
	Defaults  []ContentTypeDefault  `xml:"Default"`
	Overrides []ContentTypeOverride `xml:"Override"`
}

// ContentTypeDefault maps a file extension onto a content type
type ContentTypeDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypeOverride sets the content type of a single part
type ContentTypeOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// Settings represents word/settings.xml
type Settings struct {
	// DefaultTabStop in twips
	DefaultTabStop int
}

// MarshalXML writes w:settings with its namespace declaration
func (s Settings) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:settings"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "xmlns:w"}, Value: NamespaceW},
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if s.DefaultTabStop > 0 {
		tab := xml.StartElement{
			Name: xml.Name{Local: "w:defaultTabStop"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "w:val"}, Value: strconv.Itoa(s.DefaultTabStop)}},
		}
		if err := e.EncodeElement(struct{}{}, tab); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// CoreProperties represents docProps/core.xml
type CoreProperties struct {
	Title   string
	Creator string
}

// MarshalXML writes cp:coreProperties. Empty values are omitted.
func (c CoreProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "cp:coreProperties"}
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "xmlns:cp"}, Value: namespaceCoreProperties},
		{Name: xml.Name{Local: "xmlns:dc"}, Value: namespaceDublinCore},
		{Name: xml.Name{Local: "xmlns:dcterms"}, Value: namespaceDCTerms},
		{Name: xml.Name{Local: "xmlns:xsi"}, Value: namespaceXSI},
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if c.Title != "" {
		if err := e.EncodeElement(c.Title, xml.StartElement{Name: xml.Name{Local: "dc:title"}}); err != nil {
			return err
		}
	}
	if c.Creator != "" {
		if err := e.EncodeElement(c.Creator, xml.StartElement{Name: xml.Name{Local: "dc:creator"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// AppProperties represents docProps/app.xml
type AppProperties struct {
	XMLName     xml.Name `xml:"Properties"`
	Namespace   string   `xml:"xmlns,attr"`
	Application string   `xml:"Application,omitempty"`
	AppVersion  string   `xml:"AppVersion,omitempty"`
}
