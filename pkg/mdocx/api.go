package mdocx

import (
	"bytes"
	"context"
	"time"

	"golang.org/x/net/html"

	"github.com/benjaminschreck/go-mdocx/pkg/mdocx/xml"
)

// Converter turns element trees into DOCX documents. Its configuration
// supplies defaults for options the caller leaves unset.
type Converter struct {
	config *Config
}

// New creates a converter from the global configuration
func New() *Converter {
	return NewWithConfig(GetGlobalConfig())
}

// NewWithConfig creates a converter with the given configuration; unset fields take defaults
func NewWithConfig(config *Config) *Converter {
	return &Converter{config: NewConfigWithDefaults(config)}
}

// Build parses the tree and assembles its body blocks without packaging them
func Build(root *html.Node, opts Options) []xml.BodyElement {
	elements := ParseElements(root)
	if opts.IncludeTOC {
		elements = ApplyTOC(elements)
	}
	return Assemble(elements, opts)
}

// options fills the empty theme from the configuration, enables the
// features the configuration turns on and validates the result
func (c *Converter) options(opts Options) (Options, error) {
	if opts.Theme == "" {
		theme, err := ParseTheme(c.config.Theme)
		if err != nil {
			return opts, err
		}
		opts.Theme = theme
	}
	opts.IncludeTOC = opts.IncludeTOC || c.config.IncludeTOC
	opts.LegacyInline = opts.LegacyInline || c.config.LegacyInline
	return opts, opts.Validate()
}

// Convert converts a parsed HTML tree into DOCX bytes
func (c *Converter) Convert(ctx context.Context, root *html.Node, opts Options) ([]byte, error) {
	opts, err := c.options(opts)
	if err != nil {
		return nil, err
	}

	logger := GetLogger().WithField("theme", opts.theme().String())

	if err := ctx.Err(); err != nil {
		return nil, fail(logger, "assemble", err)
	}
	started := time.Now()
	blocks := Build(root, opts)
	logger.Debug("assembled %d blocks in %s", len(blocks), time.Since(started))

	if err := ctx.Err(); err != nil {
		return nil, fail(logger, "package", err)
	}
	started = time.Now()
	var buf bytes.Buffer
	if err := WritePackage(&buf, blocks, opts.theme()); err != nil {
		return nil, fail(logger, "package", err)
	}
	logger.Debug("packaged %d bytes in %s", buf.Len(), time.Since(started))

	return buf.Bytes(), nil
}

// ConvertHTML parses HTML source and converts it into DOCX bytes
func (c *Converter) ConvertHTML(ctx context.Context, src []byte, opts Options) ([]byte, error) {
	root, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, fail(GetLogger(), "parse", err)
	}
	return c.Convert(ctx, root, opts)
}

// ConvertMarkdown renders Markdown to HTML and converts the result into DOCX bytes.
// With IncludeTOC the [[toc]] marker is inserted first when the source has none.
func (c *Converter) ConvertMarkdown(ctx context.Context, src []byte, opts Options) ([]byte, error) {
	opts, err := c.options(opts)
	if err != nil {
		return nil, err
	}
	if opts.IncludeTOC {
		src = []byte(InsertTOCMarker(string(src)))
	}

	started := time.Now()
	rendered, err := RenderMarkdown(src)
	if err != nil {
		return nil, fail(GetLogger(), "markdown", err)
	}
	Debug("rendered markdown to %d bytes of HTML in %s", len(rendered), time.Since(started))

	return c.ConvertHTML(ctx, rendered, opts)
}

func fail(logger *Logger, stage string, cause error) error {
	logger.WithField("stage", stage).Error("conversion failed: %v", cause)
	return NewConversionError(stage, cause)
}

// Convert converts a parsed HTML tree using the global configuration
func Convert(ctx context.Context, root *html.Node, opts Options) ([]byte, error) {
	return New().Convert(ctx, root, opts)
}

// ConvertHTML converts HTML source using the global configuration
func ConvertHTML(ctx context.Context, src []byte, opts Options) ([]byte, error) {
	return New().ConvertHTML(ctx, src, opts)
}

// ConvertMarkdown converts Markdown source using the global configuration
func ConvertMarkdown(ctx context.Context, src []byte, opts Options) ([]byte, error) {
	return New().ConvertMarkdown(ctx, src, opts)
}
