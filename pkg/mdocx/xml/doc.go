// Package xml provides the WordprocessingML structures written by go-mdocx.
//
// A DOCX file is a ZIP archive of XML parts. This package models the parts of
// that archive: the main document body (paragraphs, runs, tables, section
// properties), the style catalog, settings, document properties and the
// package plumbing (relationships and content types).
//
// # Structure Organization
//
// The package is organized into logical files based on XML element types:
//
//   - types.go: Core interfaces (BodyElement, ParagraphContent) and shared leaf types
//   - document.go: Top-level Document and Body structures
//   - section.go: Section properties (page size and margins)
//   - paragraph.go: Paragraphs and their properties (alignment, spacing, borders, shading)
//   - run.go: Runs (text with formatting), Text and Break elements
//   - table.go: Tables, rows, cells and their properties
//   - styles.go: The w:styles part (document defaults and named styles)
//   - package.go: Relationships, content types, settings, core and app properties
//
// # Marshaling
//
// Every element implements xml.Marshaler and writes prefixed local names
// ("w:p", "w:r", ...) directly. The w namespace is declared once on the root
// element of each part, so the encoder never has to invent prefixes:
//
//	doc := &xml.Document{
//	    Body: &xml.Body{
//	        Elements: []xml.BodyElement{
//	            xml.NewTextParagraph("Hello, world!"),
//	        },
//	    },
//	}
//	data, err := xml.MarshalPart(doc)
//
// # XML Namespaces
//
//   - w: (word processing) - Main WordprocessingML namespace
//   - r: (relationships) - Relationships namespace
package xml
