package mdocx

import (
	"regexp"
	"strings"
)

// TOCMarker is the paragraph text replaced by the table of contents
const TOCMarker = "[[toc]]"

var firstLevelHeading = regexp.MustCompile(`^#\s`)

// InsertTOCMarker adds a TOC marker paragraph after the first level-one ATX
// heading, or at the top when there is none. Markdown that already contains
// the marker is returned unchanged.
func InsertTOCMarker(markdown string) string {
	if strings.Contains(markdown, TOCMarker) {
		return markdown
	}

	lines := strings.Split(markdown, "\n")
	for i, line := range lines {
		if !firstLevelHeading.MatchString(line) {
			continue
		}
		out := make([]string, 0, len(lines)+3)
		out = append(out, lines[:i+1]...)
		out = append(out, "", TOCMarker, "")
		out = append(out, lines[i+1:]...)
		return strings.Join(out, "\n")
	}
	return TOCMarker + "\n\n" + markdown
}

// ApplyTOC replaces every marker paragraph with a bulleted list of all heading
// texts in document order. The input slice is not modified.
func ApplyTOC(elements []ParsedElement) []ParsedElement {
	var headings []string
	for _, el := range elements {
		if h, ok := el.(Heading); ok {
			headings = append(headings, h.Text)
		}
	}

	out := make([]ParsedElement, len(elements))
	for i, el := range elements {
		if p, ok := el.(Paragraph); ok && isTOCMarker(p.Text) {
			out[i] = List{Items: headings}
			continue
		}
		out[i] = el
	}
	return out
}

func isTOCMarker(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), TOCMarker)
}
