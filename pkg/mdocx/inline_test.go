package mdocx

import (
	"reflect"
	"strings"
	"testing"
)

func TestFormatInline(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []StyledSpan
	}{
		{
			name: "no markup",
			text: "plain text",
			want: []StyledSpan{{Text: "plain text", Format: Plain, Start: 0, End: 10}},
		},
		{
			name: "bold only",
			text: "**bold**",
			want: []StyledSpan{{Text: "bold", Format: Bold, Start: 2, End: 6}},
		},
		{
			name: "bold in sentence",
			text: "before **bold** after",
			want: []StyledSpan{
				{Text: "before ", Format: Plain, Start: 0, End: 7},
				{Text: "bold", Format: Bold, Start: 9, End: 13},
				{Text: " after", Format: Plain, Start: 15, End: 21},
			},
		},
		{
			name: "bold italic run",
			text: "***both***",
			want: []StyledSpan{{Text: "both", Format: Bold | Italic, Start: 3, End: 7}},
		},
		{
			name: "bold nested in italic",
			text: "*a **b** c*",
			want: []StyledSpan{
				{Text: "a ", Format: Italic, Start: 1, End: 3},
				{Text: "b", Format: Bold | Italic, Start: 5, End: 6},
				{Text: " c", Format: Italic, Start: 8, End: 10},
			},
		},
		{
			name: "spaced asterisks are literal",
			text: "2 * 3 * 4",
			want: []StyledSpan{{Text: "2 * 3 * 4", Format: Plain, Start: 0, End: 9}},
		},
		{
			name: "code span keeps delimiters literal",
			text: "use `a*b*c` here",
			want: []StyledSpan{
				{Text: "use ", Format: Plain, Start: 0, End: 4},
				{Text: "a*b*c", Format: Code, Start: 5, End: 10},
				{Text: " here", Format: Plain, Start: 11, End: 16},
			},
		},
		{
			name: "unmatched backtick",
			text: "a ` b",
			want: []StyledSpan{{Text: "a ` b", Format: Plain, Start: 0, End: 5}},
		},
		{
			name: "strike",
			text: "~~gone~~",
			want: []StyledSpan{{Text: "gone", Format: Strike, Start: 2, End: 6}},
		},
		{
			name: "underline",
			text: "__under__",
			want: []StyledSpan{{Text: "under", Format: Underline, Start: 2, End: 7}},
		},
		{
			name: "single tilde is literal",
			text: "~single~",
			want: []StyledSpan{{Text: "~single~", Format: Plain, Start: 0, End: 8}},
		},
		{
			name: "unclosed opener is literal",
			text: "**unclosed",
			want: []StyledSpan{{Text: "**unclosed", Format: Plain, Start: 0, End: 10}},
		},
		{
			name: "escaped asterisk inside bold",
			text: `**2\*3**`,
			want: []StyledSpan{{Text: "2*3", Format: Bold, Start: 2, End: 6}},
		},
		{
			name: "escaped backslash",
			text: `a\\b`,
			want: []StyledSpan{{Text: `a\b`, Format: Plain, Start: 0, End: 4}},
		},
		{
			name: "backslash before other text is literal",
			text: `C:\dir`,
			want: []StyledSpan{{Text: `C:\dir`, Format: Plain, Start: 0, End: 6}},
		},
		{
			name: "closer prefers opener of its own size",
			text: "**2*3 = 6**",
			want: []StyledSpan{{Text: "2*3 = 6", Format: Bold, Start: 2, End: 9}},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatInline(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FormatInline(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFormatInlineReconstructsText(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"nothing to see", "nothing to see"},
		{"a **b** c", "a b c"},
		{"*x* and ~~y~~ and __z__", "x and y and z"},
		{"mixed **bold *both* bold** end", "mixed bold both bold end"},
		{"`**raw**`", "**raw**"},
		{"unicode **ümlaut** ok", "unicode ümlaut ok"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var b strings.Builder
			for _, span := range FormatInline(tt.text) {
				if span.Text == "" {
					t.Errorf("empty span in %+v", FormatInline(tt.text))
				}
				b.WriteString(span.Text)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("concatenated spans = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatInlineFromHTML(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "asterisk inside bold",
			html: "<p><strong>2*3 = 6</strong></p>",
			want: []string{"bold:2*3 = 6"},
		},
		{
			name: "trailing asterisk inside bold",
			html: "<p><strong>a*</strong></p>",
			want: []string{"bold:a*"},
		},
		{
			name: "glob inside bold",
			html: "<p><strong>glob **/*.go</strong></p>",
			want: []string{"bold:glob **/*.go"},
		},
		{
			name: "underscores and tildes in plain text",
			html: "<p>use snake_case and ~approx~ values</p>",
			want: []string{"plain:use snake_case and ~approx~ values"},
		},
		{
			name: "literal markup next to real emphasis",
			html: "<p>a **b** <em>c</em></p>",
			want: []string{"plain:a **b** ", "italic:c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements := parseString(t, tt.html)
			if len(elements) != 1 {
				t.Fatalf("got %d elements, want 1: %#v", len(elements), elements)
			}
			p, ok := elements[0].(Paragraph)
			if !ok {
				t.Fatalf("element = %T, want Paragraph", elements[0])
			}
			var got []string
			for _, span := range FormatInline(p.Text) {
				got = append(got, span.Format.String()+":"+span.Text)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FormatInline(%q) = %q, want %q", p.Text, got, tt.want)
			}
		})
	}
}

func TestEscapeInline(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"plain", "plain"},
		{"2*3", `2\*3`},
		{"a_b~c`d", "a\\_b\\~c\\`d"},
		{`back\slash`, `back\\slash`},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := EscapeInline(tt.text)
			if got != tt.want {
				t.Errorf("EscapeInline(%q) = %q, want %q", tt.text, got, tt.want)
			}
			if back := unescapeInline(got); back != tt.text {
				t.Errorf("unescapeInline(%q) = %q, want %q", got, back, tt.text)
			}
		})
	}
}

func TestFormatInlineLegacyDropsEscapes(t *testing.T) {
	spans := FormatInlineLegacy(`plain 2\*3`)
	if len(spans) != 1 || spans[0].Text != "plain 2*3" {
		t.Errorf("FormatInlineLegacy() = %+v, want one span %q", spans, "plain 2*3")
	}
}

func TestFormatInlineLegacy(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []StyledSpan
	}{
		{
			name: "no markup",
			text: "plain",
			want: []StyledSpan{{Text: "plain", Start: 0, End: 5}},
		},
		{
			name: "empty",
			text: "",
			want: []StyledSpan{{Text: "", Start: 0, End: 0}},
		},
		{
			name: "italic",
			text: "an *italic* word",
			want: []StyledSpan{
				{Text: "an ", Start: 0, End: 3},
				{Text: "italic", Format: Italic, Start: 4, End: 10},
				{Text: " word", Start: 11, End: 16},
			},
		},
		{
			// The italic pattern also matches both halves of the bold
			// delimiters, which the independent scans never deduplicate
			name: "bold overlaps italic scan",
			text: "before **bold** after",
			want: []StyledSpan{
				{Text: "before ", Start: 0, End: 7},
				{Text: "bold", Format: Bold, Start: 9, End: 13},
				{Text: "", Format: Italic, Start: 8, End: 8},
				{Text: "bold", Start: 9, End: 13},
				{Text: "", Format: Italic, Start: 14, End: 14},
				{Text: " after", Start: 15, End: 21},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatInlineLegacy(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FormatInlineLegacy(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Plain, "plain"},
		{Bold, "bold"},
		{Bold | Italic, "bold+italic"},
		{Strike | Code, "strike+code"},
		{Bold | Italic | Strike | Underline | Code, "bold+italic+strike+underline+code"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatHas(t *testing.T) {
	f := Bold | Code
	if !f.Has(Bold) || !f.Has(Code) || !f.Has(Bold|Code) {
		t.Errorf("%v should have bold and code", f)
	}
	if f.Has(Italic) || f.Has(Bold|Italic) {
		t.Errorf("%v should not have italic", f)
	}
}
