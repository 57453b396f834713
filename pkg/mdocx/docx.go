package mdocx

import (
	"archive/zip"
	"io"

	"github.com/benjaminschreck/go-mdocx/pkg/mdocx/xml"
)

// Part names of the generated package
const (
	partContentTypes = "[Content_Types].xml"
	partRels         = "_rels/.rels"
	partDocument     = "word/document.xml"
	partStyles       = "word/styles.xml"
	partSettings     = "word/settings.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partCore         = "docProps/core.xml"
	partApp          = "docProps/app.xml"
)

// Content types of the generated parts
const (
	contentTypeRels     = "application/vnd.openxmlformats-package.relationships+xml"
	contentTypeXML      = "application/xml"
	contentTypeDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	contentTypeStyles   = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	contentTypeSettings = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	contentTypeCore     = "application/vnd.openxmlformats-package.core-properties+xml"
	contentTypeApp      = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// applicationName is recorded in docProps/app.xml
const applicationName = "go-mdocx"

// PackageParts lists the parts of every generated document in archive order
var PackageParts = []string{
	partContentTypes,
	partRels,
	partDocument,
	partStyles,
	partSettings,
	partDocumentRels,
	partCore,
	partApp,
}

// documentPackage holds everything written into one DOCX archive
type documentPackage struct {
	blocks []xml.BodyElement
	theme  Theme
	title  string
}

func newDocumentPackage(blocks []xml.BodyElement, theme Theme) *documentPackage {
	return &documentPackage{
		blocks: blocks,
		theme:  theme,
		title:  documentTitle(blocks),
	}
}

// documentTitle returns the text of the first level-one heading
func documentTitle(blocks []xml.BodyElement) string {
	for _, block := range blocks {
		if p, ok := block.(*xml.Paragraph); ok && p.StyleID() == "Heading1" {
			return p.GetText()
		}
	}
	return ""
}

type packagePart struct {
	name  string
	value any
}

func (p *documentPackage) parts() []packagePart {
	values := map[string]any{
		partContentTypes: contentTypesPart(),
		partRels: xml.NewRelationships(
			xml.Relationship{Type: xml.RelTypeOfficeDocument, Target: partDocument},
			xml.Relationship{Type: xml.RelTypeCoreProperties, Target: partCore},
			xml.Relationship{Type: xml.RelTypeExtended, Target: partApp},
		),
		partDocument: xml.Document{Body: &xml.Body{
			Elements:          p.blocks,
			SectionProperties: xml.A4Section(pageMargin),
		}},
		partStyles:   stylesPart(p.theme),
		partSettings: xml.Settings{DefaultTabStop: 720},
		partDocumentRels: xml.NewRelationships(
			xml.Relationship{Type: xml.RelTypeStyles, Target: "styles.xml"},
			xml.Relationship{Type: xml.RelTypeSettings, Target: "settings.xml"},
		),
		partCore: xml.CoreProperties{Title: p.title, Creator: applicationName},
		partApp: &xml.AppProperties{
			Namespace:   xml.NamespaceExtendedProperties,
			Application: applicationName,
		},
	}

	parts := make([]packagePart, 0, len(PackageParts))
	for _, name := range PackageParts {
		parts = append(parts, packagePart{name: name, value: values[name]})
	}
	return parts
}

func contentTypesPart() *xml.ContentTypes {
	return &xml.ContentTypes{
		Namespace: xml.NamespaceContentTypes,
		Defaults: []xml.ContentTypeDefault{
			{Extension: "rels", ContentType: contentTypeRels},
			{Extension: "xml", ContentType: contentTypeXML},
		},
		Overrides: []xml.ContentTypeOverride{
			{PartName: "/" + partDocument, ContentType: contentTypeDocument},
			{PartName: "/" + partStyles, ContentType: contentTypeStyles},
			{PartName: "/" + partSettings, ContentType: contentTypeSettings},
			{PartName: "/" + partCore, ContentType: contentTypeCore},
			{PartName: "/" + partApp, ContentType: contentTypeApp},
		},
	}
}

// writePackage serializes the package as a ZIP archive. Entries carry no
// timestamps, so equal input always produces identical bytes.
func writePackage(w io.Writer, pkg *documentPackage) error {
	zw := zip.NewWriter(w)

	for _, part := range pkg.parts() {
		data, err := xml.MarshalPart(part.value)
		if err != nil {
			return NewPackageError("marshal", part.name, err)
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: part.name, Method: zip.Deflate})
		if err != nil {
			return NewPackageError("create", part.name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return NewPackageError("write", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return NewPackageError("close", "", err)
	}
	return nil
}

// WritePackage writes blocks as a complete DOCX archive to w using the theme's style catalog
func WritePackage(w io.Writer, blocks []xml.BodyElement, theme Theme) error {
	return writePackage(w, newDocumentPackage(blocks, theme))
}
