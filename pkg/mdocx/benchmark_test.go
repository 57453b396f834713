package mdocx

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// Common benchmark inputs
var (
	benchmarkSimpleHTML = []byte(`<h1>Title</h1><p>Some <strong>bold</strong> text.</p>`)

	benchmarkMarkdown = []byte("# Report\n\n## Summary\n\nSome **bold**, *italic* and `code` text.\n\n" +
		"| A | B | C |\n|---|---|---|\n| 1 | 2 | 3 |\n| 4 | 5 | 6 |\n\n" +
		"```json\n{\n\"a\": [\n1,\n2\n]\n}\n```\n\n> quoted\n\n---\n\n- one\n- two\n")
)

// largeMarkdown builds a document with the given number of sections
func largeMarkdown(sections int) []byte {
	var b strings.Builder
	b.WriteString("# Large Document\n\n")
	for i := 0; i < sections; i++ {
		fmt.Fprintf(&b, "## Section %d\n\n", i)
		fmt.Fprintf(&b, "Paragraph %d with **bold *nested* text** and ~~struck~~ words.\n\n", i)
		b.WriteString("| Key | Value |\n|-----|-------|\n| a | 1 |\n| b | 2 |\n\n")
	}
	return []byte(b.String())
}

func BenchmarkConvertHTML_Simple(b *testing.B) {
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ConvertHTML(ctx, benchmarkSimpleHTML, Options{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvertMarkdown(b *testing.B) {
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ConvertMarkdown(ctx, benchmarkMarkdown, Options{IncludeTOC: true}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvertMarkdown_Large(b *testing.B) {
	src := largeMarkdown(200)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ConvertMarkdown(ctx, src, Options{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFormatInline(b *testing.B) {
	text := strings.Repeat("plain **bold *both* bold** `code` ~~strike~~ __under__ ", 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FormatInline(text)
	}
}

func BenchmarkFormatInlineLegacy(b *testing.B) {
	text := strings.Repeat("plain **bold *both* bold** `code` ~~strike~~ __under__ ", 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FormatInlineLegacy(text)
	}
}

func BenchmarkNormalizeCode(b *testing.B) {
	lines := make([]string, 0, 3000)
	for i := 0; i < 1000; i++ {
		lines = append(lines, `"item": {`, `"value": 1`, "},")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NormalizeCode(lines, "json")
	}
}
