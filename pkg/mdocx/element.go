package mdocx

// ElementKind identifies the variant of a ParsedElement and the style family
// the resolver applies
type ElementKind int

const (
	KindHeading ElementKind = iota
	KindParagraph
	KindList
	KindCode
	KindTable
	KindBlockquote
	KindRule
)

func (k ElementKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindList:
		return "list"
	case KindCode:
		return "code"
	case KindTable:
		return "table"
	case KindBlockquote:
		return "blockquote"
	case KindRule:
		return "rule"
	default:
		return "unknown"
	}
}

// ParsedElement is one logical block of the source document.
// The set of implementations is closed; see Heading, Paragraph, List,
// CodeBlock, Table, Blockquote and Rule.
type ParsedElement interface {
	Kind() ElementKind
	isParsedElement()
}

// Heading is a section title. Level is always within 1..6.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is body text which may contain inline delimiter markup.
// Literal markup characters are backslash-escaped, see EscapeInline.
type Paragraph struct {
	Text string
}

// List is an ordered or bulleted list of item texts
type List struct {
	Ordered bool
	Items   []string
}

// CodeBlock is preformatted text with an optional language tag
type CodeBlock struct {
	Text     string
	Language string
}

// Table holds header and row cell texts. Rows may be ragged.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Blockquote is quoted text rendered as one run per line, joined by breaks
type Blockquote struct {
	Text string
}

// Rule is a horizontal separator
type Rule struct{}

func (Heading) Kind() ElementKind    { return KindHeading }
func (Paragraph) Kind() ElementKind  { return KindParagraph }
func (List) Kind() ElementKind       { return KindList }
func (CodeBlock) Kind() ElementKind  { return KindCode }
func (Table) Kind() ElementKind      { return KindTable }
func (Blockquote) Kind() ElementKind { return KindBlockquote }
func (Rule) Kind() ElementKind       { return KindRule }

func (Heading) isParsedElement()    {}
func (Paragraph) isParsedElement()  {}
func (List) isParsedElement()       {}
func (CodeBlock) isParsedElement()  {}
func (Table) isParsedElement()      {}
func (Blockquote) isParsedElement() {}
func (Rule) isParsedElement()       {}
