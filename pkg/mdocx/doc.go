// Package mdocx converts Markdown and HTML documents into Word documents (DOCX).
//
// The conversion is a structural compile in five stages:
//
//   - Element parsing: an HTML element tree becomes a flat list of ParsedElement
//     values (headings, paragraphs, lists, code blocks, tables, quotes, rules).
//   - Inline formatting: delimiter markup inside paragraph text (**bold**,
//     *italic*, ~~strike~~, __underline__, `code`) is resolved into StyledSpan values.
//   - Code normalization: code block lines are trimmed and, for JSON and YAML,
//     re-indented from bracket depth.
//   - Style resolution: a Theme and element kind map to a StyleSpec.
//   - Assembly: elements become paragraphs and tables which are packaged into
//     the DOCX container.
//
// # Basic Usage
//
//	docx, err := mdocx.ConvertMarkdown(ctx, []byte("# Title\n\nSome **bold** text."), mdocx.Options{
//		Theme: mdocx.ThemeElegant,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("my-document.docx", docx, 0o644)
//
// HTML input goes through ConvertHTML, and an already parsed tree through Convert.
//
// # Themes
//
// Two themes are built in. ThemeMinimal uses Calibri with a blue palette and
// ThemeElegant uses Georgia with a purple palette. Structural spacing is the same
// for both.
//
// # Table of Contents
//
// With Options.IncludeTOC set, ConvertMarkdown inserts a [[toc]] marker after the
// first level-one heading, and the marker paragraph is replaced by a list of all
// heading texts.
//
// # Configuration
//
// Package-wide defaults come from MDOCX_* environment variables or a YAML file
// (see Config). Converter values carry their own Config.
//
// # Errors
//
// Parsing and assembly never fail; malformed markup degrades to plain
// paragraphs. Packaging failures and canceled contexts are reported as
// *ConversionError, which matches ErrConversionFailed with errors.Is and wraps
// the underlying cause. Unknown options are rejected up front with *OptionError.
package mdocx
