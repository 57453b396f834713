package mdocx

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	headingTag    = regexp.MustCompile(`^h(\d+)$`)
	languageClass = regexp.MustCompile(`language-(\w+)`)
)

// inlineDelimiters maps inline tags onto the markup FormatInline understands
var inlineDelimiters = map[string]string{
	"strong": "**",
	"b":      "**",
	"em":     "*",
	"i":      "*",
	"del":    "~~",
	"s":      "~~",
	"strike": "~~",
	"u":      "__",
	"ins":    "__",
}

var containerTags = map[string]bool{
	"html":    true,
	"body":    true,
	"div":     true,
	"section": true,
	"article": true,
	"main":    true,
}

var blockTags = map[string]bool{
	"p":          true,
	"ul":         true,
	"ol":         true,
	"li":         true,
	"pre":        true,
	"table":      true,
	"tr":         true,
	"blockquote": true,
	"hr":         true,
}

// ignoredTags never contribute document content
var ignoredTags = map[string]bool{
	"head":     true,
	"script":   true,
	"style":    true,
	"template": true,
}

// ParseHTML parses an HTML document into a node tree
func ParseHTML(src string) (*html.Node, error) {
	return html.Parse(strings.NewReader(src))
}

// ParseElements maps the children of root (or of its <body>) onto parsed elements
// in document order. It never fails: unknown elements with text become
// paragraphs and whitespace-only elements are dropped.
func ParseElements(root *html.Node) []ParsedElement {
	if root == nil {
		return nil
	}
	doc := goquery.NewDocumentFromNode(root)
	start := doc.Selection
	if body := doc.Find("body").First(); body.Length() > 0 {
		start = body
	}
	return parseChildren(start)
}

func parseChildren(s *goquery.Selection) []ParsedElement {
	var elements []ParsedElement
	s.Children().Each(func(_ int, child *goquery.Selection) {
		elements = append(elements, parseElement(child)...)
	})
	return elements
}

func parseElement(s *goquery.Selection) []ParsedElement {
	tag := strings.ToLower(goquery.NodeName(s))

	if m := headingTag.FindStringSubmatch(tag); m != nil {
		return []ParsedElement{Heading{Level: parseLevel(m[1]), Text: plainText(s)}}
	}

	switch tag {
	case "p":
		return []ParsedElement{Paragraph{Text: inlineText(s)}}
	case "ul", "ol":
		return []ParsedElement{List{Ordered: tag == "ol", Items: listItems(s)}}
	case "pre":
		return []ParsedElement{parseCode(s)}
	case "table":
		return []ParsedElement{parseTable(s)}
	case "blockquote":
		return []ParsedElement{Blockquote{Text: strings.Join(blockLines(s.Nodes[0]), "\n")}}
	case "hr":
		return []ParsedElement{Rule{}}
	}

	if ignoredTags[tag] {
		return nil
	}
	if containerTags[tag] && hasBlockChildren(s) {
		return parseChildren(s)
	}
	return fallbackParagraph(s)
}

func fallbackParagraph(s *goquery.Selection) []ParsedElement {
	text := inlineText(s)
	if text == "" {
		return nil
	}
	return []ParsedElement{Paragraph{Text: text}}
}

// parseLevel converts the digits of an hN tag into a heading level in 1..6
func parseLevel(digits string) int {
	level, err := strconv.Atoi(digits)
	if err != nil {
		// Only overflow can fail here
		return 6
	}
	return clampLevel(level)
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}

func parseCode(s *goquery.Selection) CodeBlock {
	language := ""
	if class, ok := s.Find("code").First().Attr("class"); ok {
		if m := languageClass.FindStringSubmatch(class); m != nil {
			language = m[1]
		}
	}
	text := strings.ReplaceAll(s.Text(), "\r\n", "\n")
	return CodeBlock{Text: text, Language: language}
}

func listItems(s *goquery.Selection) []string {
	var items []string
	s.Find("li").Each(func(_ int, li *goquery.Selection) {
		var b strings.Builder
		for _, n := range li.Nodes {
			writePlainChildren(&b, n, true)
		}
		items = append(items, strings.TrimSpace(collapseSpace(b.String())))
	})
	return items
}

func parseTable(s *goquery.Selection) Table {
	var table Table

	if head := s.Find("thead tr").First(); head.Length() > 0 {
		table.Headers = cellTexts(head)
	}

	rows := s.Find("tbody tr")
	if rows.Length() == 0 {
		rows = s.ChildrenFiltered("tr")
	}
	rows.Each(func(_ int, tr *goquery.Selection) {
		table.Rows = append(table.Rows, cellTexts(tr))
	})

	// Tables without a thead may still open with a row of th cells
	if len(table.Headers) == 0 && len(table.Rows) > 0 && isHeaderRow(rows.First()) {
		table.Headers = table.Rows[0]
		table.Rows = table.Rows[1:]
	}
	return table
}

func cellTexts(tr *goquery.Selection) []string {
	var cells []string
	tr.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, plainText(cell))
	})
	return cells
}

func isHeaderRow(tr *goquery.Selection) bool {
	return tr.ChildrenFiltered("th").Length() > 0 && tr.ChildrenFiltered("td").Length() == 0
}

func hasBlockChildren(s *goquery.Selection) bool {
	found := false
	s.Children().EachWithBreak(func(_ int, child *goquery.Selection) bool {
		found = isBlockTag(goquery.NodeName(child))
		return !found
	})
	return found
}

func isBlockTag(tag string) bool {
	tag = strings.ToLower(tag)
	return blockTags[tag] || containerTags[tag] || headingTag.MatchString(tag)
}

// plainText returns the whitespace-collapsed text of a selection
func plainText(s *goquery.Selection) string {
	return strings.TrimSpace(collapseSpace(s.Text()))
}

// inlineText flattens a selection into text, re-emitting inline formatting
// tags as delimiter markup. Markup characters in text nodes are escaped and
// <br> becomes a newline.
func inlineText(s *goquery.Selection) string {
	var b strings.Builder
	for _, n := range s.Nodes {
		writeInlineChildren(&b, n)
	}
	return tidyLines(b.String())
}

func writeInlineChildren(b *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeInline(b, c)
	}
}

func writeInline(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(EscapeInline(collapseSpace(n.Data)))
	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		switch {
		case ignoredTags[tag]:
			return
		case tag == "br":
			b.WriteByte('\n')
			return
		case tag == "code":
			var code strings.Builder
			writePlainChildren(&code, n, false)
			if inner := collapseSpace(code.String()); strings.TrimSpace(inner) != "" {
				b.WriteString("`" + inner + "`")
			}
			return
		}

		delim := inlineDelimiters[tag]
		if delim == "" {
			writeInlineChildren(b, n)
			return
		}
		var inner strings.Builder
		writeInlineChildren(&inner, n)
		if strings.TrimSpace(inner.String()) == "" {
			b.WriteString(inner.String())
			return
		}
		b.WriteString(delim)
		b.WriteString(inner.String())
		b.WriteString(delim)
	}
}

// writePlainChildren appends the text below n, optionally skipping nested lists
func writePlainChildren(b *strings.Builder, n *html.Node, skipLists bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode:
			if skipLists && (c.Data == "ul" || c.Data == "ol") {
				b.WriteByte(' ')
				continue
			}
			writePlainChildren(b, c, skipLists)
		}
	}
}

// blockLines splits the text below n into trimmed, non-empty lines at block
// element and <br> boundaries
func blockLines(n *html.Node) []string {
	var (
		lines   []string
		current strings.Builder
	)
	flush := func() {
		if line := strings.TrimSpace(collapseSpace(current.String())); line != "" {
			lines = append(lines, line)
		}
		current.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.TextNode:
				current.WriteString(c.Data)
			case c.Type != html.ElementNode:
				continue
			case c.Data == "br":
				flush()
			case isBlockTag(c.Data):
				flush()
				walk(c)
				flush()
			default:
				walk(c)
			}
		}
	}
	walk(n)
	flush()
	return lines
}

// collapseSpace replaces every run of whitespace with a single space
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// tidyLines trims spaces around line breaks and at both ends
func tidyLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
