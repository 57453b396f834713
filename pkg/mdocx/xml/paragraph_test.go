package xml

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestParagraphPropertiesOrder(t *testing.T) {
	p := Paragraph{
		Properties: &ParagraphProperties{
			Style:        &Style{Val: "Heading1"},
			KeepNext:     true,
			Borders:      &ParagraphBorders{Bottom: &Border{Size: 6, Space: 1, Color: "93C5FD"}},
			Shading:      SolidFill("EFF6FF"),
			Spacing:      &Spacing{Before: 170, After: 340},
			Indentation:  &Indentation{Left: 680, Hanging: 340},
			Alignment:    &Alignment{Val: "center"},
			OutlineLevel: &OutlineLevel{Val: 3},
		},
	}

	data, err := xml.Marshal(p)
	if err != nil {
		t.Fatalf("Failed to marshal paragraph: %v", err)
	}
	result := string(data)

	order := []string{"<w:pStyle", "<w:keepNext", "<w:pBdr", "<w:shd", "<w:spacing", "<w:ind", "<w:jc", "<w:outlineLvl"}
	last := -1
	for _, tag := range order {
		idx := strings.Index(result, tag)
		if idx < 0 {
			t.Fatalf("Expected %s in %s", tag, result)
		}
		if idx < last {
			t.Errorf("%s written out of schema order: %s", tag, result)
		}
		last = idx
	}

	for _, want := range []string{
		`<w:pStyle w:val="Heading1">`,
		`<w:bottom w:val="single" w:sz="6" w:space="1" w:color="93C5FD">`,
		`<w:shd w:val="clear" w:color="auto" w:fill="EFF6FF">`,
		`<w:spacing w:before="170" w:after="340">`,
		`<w:ind w:left="680" w:right="0" w:hanging="340">`,
		`<w:outlineLvl w:val="3">`,
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in %s", want, result)
		}
	}
}

func TestSpacingLineRule(t *testing.T) {
	tests := []struct {
		name     string
		spacing  Spacing
		expected string
	}{
		{
			name:     "zero spacing is still written",
			spacing:  Spacing{},
			expected: `<w:spacing w:before="0" w:after="0"></w:spacing>`,
		},
		{
			name:     "line defaults to auto rule",
			spacing:  Spacing{Line: 240},
			expected: `<w:spacing w:before="0" w:after="0" w:line="240" w:lineRule="auto"></w:spacing>`,
		},
		{
			name:     "explicit line rule",
			spacing:  Spacing{Before: 56, After: 56, Line: 300, LineRule: "exact"},
			expected: `<w:spacing w:before="56" w:after="56" w:line="300" w:lineRule="exact"></w:spacing>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := xml.Marshal(tt.spacing)
			if err != nil {
				t.Fatalf("Failed to marshal spacing: %v", err)
			}
			if string(data) != tt.expected {
				t.Errorf("got %s, want %s", data, tt.expected)
			}
		})
	}
}

func TestParagraphGetText(t *testing.T) {
	p := Paragraph{Content: []ParagraphContent{
		NewTextRun("line one", nil),
		&Run{Break: &Break{}, Text: NewText("line two")},
	}}

	if got := p.GetText(); got != "line one\nline two" {
		t.Errorf("GetText() = %q", got)
	}
	if got := p.StyleID(); got != "" {
		t.Errorf("StyleID() = %q, want empty", got)
	}
}
