package mdocx

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConvertHTML(t *testing.T) {
	data, err := ConvertHTML(context.Background(), []byte(`<h1>Title</h1><p>Some <strong>bold</strong> text.</p>`), Options{})
	if err != nil {
		t.Fatalf("ConvertHTML() error = %v", err)
	}

	names, parts := readArchive(t, data)
	if len(names) != len(PackageParts) {
		t.Errorf("got %d parts, want %d", len(names), len(PackageParts))
	}
	document := parts["word/document.xml"]
	if !strings.Contains(document, ">bold</w:t>") || !strings.Contains(document, "<w:b></w:b>") {
		t.Errorf("bold run missing from document.xml: %s", document)
	}
}

func TestConvertEmptyInput(t *testing.T) {
	data, err := ConvertHTML(context.Background(), nil, Options{})
	if err != nil {
		t.Fatalf("ConvertHTML(nil) error = %v", err)
	}
	_, parts := readArchive(t, data)
	assertWellFormed(t, "word/document.xml", parts["word/document.xml"])
}

func TestConvertMarkdown(t *testing.T) {
	src := "# Guide\n\n## Install\n\nRun `go install`.\n\n| A | B |\n|---|---|\n| 1 | 2 |\n\n> quoted\n\n---\n"

	data, err := ConvertMarkdown(context.Background(), []byte(src), Options{Theme: ThemeElegant, IncludeTOC: true})
	if err != nil {
		t.Fatalf("ConvertMarkdown() error = %v", err)
	}

	_, parts := readArchive(t, data)
	document := parts["word/document.xml"]
	for _, want := range []string{
		"• Guide", "• Install",
		`<w:pStyle w:val="Heading2">`,
		"<w:tbl>",
		`<w:pStyle w:val="Quote">`,
		"Georgia",
	} {
		if !strings.Contains(document, want) {
			t.Errorf("document.xml should contain %q", want)
		}
	}
	if strings.Contains(document, TOCMarker) {
		t.Error("marker should be replaced by the table of contents")
	}
}

func TestConvertMarkdownWithoutTOCKeepsMarker(t *testing.T) {
	data, err := ConvertMarkdown(context.Background(), []byte("# A\n\n[[toc]]\n"), Options{})
	if err != nil {
		t.Fatalf("ConvertMarkdown() error = %v", err)
	}
	_, parts := readArchive(t, data)
	if !strings.Contains(parts["word/document.xml"], TOCMarker) {
		t.Error("marker should stay literal without IncludeTOC")
	}
}

func TestConvertInvalidOptions(t *testing.T) {
	_, err := ConvertHTML(context.Background(), []byte("<p>x</p>"), Options{Theme: "neon"})

	var optErr *OptionError
	if !errors.As(err, &optErr) {
		t.Fatalf("error = %v, want *OptionError", err)
	}
	if errors.Is(err, ErrConversionFailed) {
		t.Error("invalid options are reported before conversion starts")
	}
}

func TestConvertCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ConvertHTML(ctx, []byte("<p>x</p>"), Options{})
	if !errors.Is(err, ErrConversionFailed) {
		t.Fatalf("error = %v, want ErrConversionFailed", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("cause should be context.Canceled")
	}
	if err.Error() != "failed to convert to DOCX format" {
		t.Errorf("Error() = %q, want the generic message", err.Error())
	}
}

func TestConverterConfigDefaults(t *testing.T) {
	converter := NewWithConfig(&Config{Theme: "Elegant", IncludeTOC: true})

	opts, err := converter.options(Options{})
	if err != nil {
		t.Fatalf("options() error = %v", err)
	}
	if opts.Theme != ThemeElegant || !opts.IncludeTOC {
		t.Errorf("options() = %+v, want config defaults", opts)
	}

	opts, err = converter.options(Options{Theme: ThemeMinimal})
	if err != nil {
		t.Fatalf("options() error = %v", err)
	}
	if opts.Theme != ThemeMinimal {
		t.Errorf("explicit theme overridden: %+v", opts)
	}
}

func TestConverterRejectsInvalidConfigTheme(t *testing.T) {
	t.Setenv("MDOCX_THEME", "bogus")
	converter := NewWithConfig(ConfigFromEnvironment())

	tests := []struct {
		name    string
		convert func() ([]byte, error)
	}{
		{
			name: "html",
			convert: func() ([]byte, error) {
				return converter.ConvertHTML(context.Background(), []byte("<p>x</p>"), Options{})
			},
		},
		{
			name: "markdown",
			convert: func() ([]byte, error) {
				return converter.ConvertMarkdown(context.Background(), []byte("x"), Options{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.convert()
			var optErr *OptionError
			if !errors.As(err, &optErr) {
				t.Fatalf("error = %v, want *OptionError", err)
			}
			if optErr.Value != "bogus" {
				t.Errorf("OptionError.Value = %q, want %q", optErr.Value, "bogus")
			}
			if out != nil {
				t.Error("output should be nil on an option error")
			}
		})
	}

	// An explicit theme still wins over the invalid configuration
	if _, err := converter.ConvertHTML(context.Background(), []byte("<p>x</p>"), Options{Theme: ThemeElegant}); err != nil {
		t.Errorf("explicit theme error = %v", err)
	}
}

func TestConvertIsIdempotent(t *testing.T) {
	src := []byte("<h2>Same</h2><ul><li>a</li></ul>")
	first, err := ConvertHTML(context.Background(), src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := ConvertHTML(context.Background(), src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("repeated conversion produced different output")
	}
}
