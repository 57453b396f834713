package mdocx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Format is a set of inline formatting flags
type Format uint8

const (
	Bold Format = 1 << iota
	Italic
	Strike
	Underline
	Code
)

// Plain is the empty format
const Plain Format = 0

var formatNames = []struct {
	flag Format
	name string
}{
	{Bold, "bold"},
	{Italic, "italic"},
	{Strike, "strike"},
	{Underline, "underline"},
	{Code, "code"},
}

// Has reports whether every flag in flag is set
func (f Format) Has(flag Format) bool {
	return f&flag == flag
}

func (f Format) String() string {
	if f == Plain {
		return "plain"
	}
	var names []string
	for _, fn := range formatNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "+")
}

// StyledSpan is a run of text sharing one format.
// Start and End are byte offsets into the source text; for a span merged
// across consumed delimiters they cover the delimiters too.
type StyledSpan struct {
	Text   string
	Format Format
	Start  int
	End    int
}

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenCode
	tokenDelim
)

type inlineToken struct {
	kind   tokenKind
	start  int
	end    int
	char   byte
	format Format
	opener bool
	// matched delimiters toggle formatting, unmatched ones are literal text
	matched bool
}

// FormatInline resolves delimiter markup in text into styled spans.
//
// Delimiters are **bold**, *italic*, ~~strike~~, __underline__ and `code`.
// A backslash before one of *_~`\ makes that character literal.
// Nesting is resolved with a stack: a closer matches the nearest open
// delimiter of the same character and size, else the nearest one that fits,
// and any openers above it become literal text, as do openers left unclosed
// at the end. A delimiter run can only open when it
// is followed by a non-space character and only close when it follows one.
// Code spans are literal. Adjacent text with the same format is merged and
// empty spans are never returned.
func FormatInline(text string) []StyledSpan {
	var (
		spans  spanBuilder
		counts = make(map[Format]int)
	)
	for _, tok := range tokenizeInline(text) {
		switch {
		case tok.kind == tokenDelim && tok.matched:
			if tok.opener {
				counts[tok.format]++
			} else {
				counts[tok.format]--
			}
		case tok.kind == tokenCode:
			spans.add(text, tok.start, tok.end, activeFormat(counts)|Code)
		default:
			spans.add(text, tok.start, tok.end, activeFormat(counts))
		}
	}
	return spans.spans
}

func activeFormat(counts map[Format]int) Format {
	var f Format
	for flag, n := range counts {
		if n > 0 {
			f |= flag
		}
	}
	return f
}

type spanBuilder struct {
	spans []StyledSpan
}

func (b *spanBuilder) add(text string, start, end int, format Format) {
	if start >= end {
		return
	}
	if n := len(b.spans); n > 0 && b.spans[n-1].Format == format {
		b.spans[n-1].Text += text[start:end]
		b.spans[n-1].End = end
		return
	}
	b.spans = append(b.spans, StyledSpan{Text: text[start:end], Format: format, Start: start, End: end})
}

func tokenizeInline(text string) []inlineToken {
	var (
		tokens    []inlineToken
		stack     []int
		textStart int
	)
	flushText := func(end int) {
		if end > textStart {
			tokens = append(tokens, inlineToken{kind: tokenText, start: textStart, end: end})
		}
	}

	for i := 0; i < len(text); {
		c := text[i]
		switch c {
		case '\\':
			if i+1 < len(text) && isEscapable(text[i+1]) {
				flushText(i)
				textStart = i + 1
				i += 2
				continue
			}
			i++
		case '`':
			n := runLength(text, i)
			closeAt := findBacktickRun(text, i+n, n)
			if closeAt < 0 {
				// Unmatched backticks stay in the surrounding text
				i += n
				continue
			}
			flushText(i)
			tokens = append(tokens, inlineToken{kind: tokenCode, start: i + n, end: closeAt})
			i = closeAt + n
			textStart = i
		case '*', '_', '~':
			n := runLength(text, i)
			flushText(i)
			tokens, stack = delimiterRun(text, i, n, tokens, stack)
			i += n
			textStart = i
		default:
			i++
		}
	}
	flushText(len(text))
	return tokens
}

// delimiterRun splits a run of n delimiter characters at pos into closers
// (matched against the stack) followed by openers and literal leftovers
func delimiterRun(text string, pos, n int, tokens []inlineToken, stack []int) ([]inlineToken, []int) {
	c := text[pos]
	at, remaining := pos, n

	if canClose(text, pos) {
		for remaining > 0 {
			k := closingOpener(tokens, stack, c, remaining)
			if k < 0 {
				break
			}
			opener := &tokens[stack[k]]
			size := opener.end - opener.start
			opener.matched = true
			tokens = append(tokens, inlineToken{
				kind:    tokenDelim,
				start:   at,
				end:     at + size,
				char:    c,
				format:  opener.format,
				matched: true,
			})
			// Openers above the match stay unmatched
			stack = stack[:k]
			at += size
			remaining -= size
		}
	}

	if canOpen(text, pos+n) {
		for remaining > 0 {
			size := openSize(c, remaining)
			if size == 0 {
				break
			}
			tokens = append(tokens, inlineToken{
				kind:   tokenDelim,
				start:  at,
				end:    at + size,
				char:   c,
				format: delimiterFormat(c, size),
				opener: true,
			})
			stack = append(stack, len(tokens)-1)
			at += size
			remaining -= size
		}
	}

	if remaining > 0 {
		tokens = append(tokens, inlineToken{kind: tokenText, start: at, end: at + remaining})
	}
	return tokens, stack
}

// closingOpener returns the stack index of the opener a closing run of
// remaining characters matches, or -1
func closingOpener(tokens []inlineToken, stack []int, c byte, remaining int) int {
	fit := -1
	for k := len(stack) - 1; k >= 0; k-- {
		tok := tokens[stack[k]]
		if tok.char != c {
			continue
		}
		size := tok.end - tok.start
		if size == remaining {
			return k
		}
		if fit < 0 && size < remaining {
			fit = k
		}
	}
	return fit
}

// openSize returns how many delimiter characters the next opener consumes
func openSize(c byte, remaining int) int {
	switch {
	case remaining >= 2:
		return 2
	case c == '*':
		return 1
	default:
		return 0
	}
}

func delimiterFormat(c byte, size int) Format {
	switch c {
	case '*':
		if size == 1 {
			return Italic
		}
		return Bold
	case '_':
		return Underline
	default:
		return Strike
	}
}

// canOpen reports whether the character at end is a non-space
func canOpen(text string, end int) bool {
	if end >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !unicode.IsSpace(r)
}

// canClose reports whether the character before pos is a non-space
func canClose(text string, pos int) bool {
	if pos == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return !unicode.IsSpace(r)
}

func isEscapable(c byte) bool {
	return strings.IndexByte(inlineEscapable, c) >= 0
}

const inlineEscapable = "*_~`\\"

// EscapeInline backslash-escapes the characters FormatInline treats as markup
func EscapeInline(text string) string {
	if !strings.ContainsAny(text, inlineEscapable) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 4)
	for i := 0; i < len(text); i++ {
		if isEscapable(text[i]) {
			b.WriteByte('\\')
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

// unescapeInline drops the backslash of every escaped markup character
func unescapeInline(text string) string {
	if !strings.Contains(text, "\\") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) && isEscapable(text[i+1]) {
			i++
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

func runLength(text string, pos int) int {
	n := 1
	for pos+n < len(text) && text[pos+n] == text[pos] {
		n++
	}
	return n
}

// findBacktickRun returns the start of the next run of exactly n backticks
func findBacktickRun(text string, from, n int) int {
	for i := from; i < len(text); {
		if text[i] != '`' {
			i++
			continue
		}
		run := runLength(text, i)
		if run == n {
			return i
		}
		i += run
	}
	return -1
}
