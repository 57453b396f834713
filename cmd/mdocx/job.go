package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/benjaminschreck/go-mdocx/pkg/mdocx"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wordwrap"
	"github.com/natefinch/atomic"
	"golang.org/x/net/html"
	"golang.org/x/term"
)

const defaultWidth = 80

type inputFormat int

const (
	formatAuto inputFormat = iota
	formatMarkdown
	formatHTML
)

func parseFormat(value string) (inputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return formatAuto, nil
	case "markdown", "md":
		return formatMarkdown, nil
	case "html", "htm":
		return formatHTML, nil
	default:
		return formatAuto, errors.New("expected auto|markdown|html")
	}
}

// detectFormat resolves formatAuto from the file extension, or from the
// content when reading stdin
func detectFormat(format inputFormat, path string, src []byte) inputFormat {
	if format != formatAuto {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return formatHTML
	case ".md", ".markdown", ".mdown", ".txt":
		return formatMarkdown
	}
	if bytes.HasPrefix(bytes.TrimSpace(src), []byte("<")) {
		return formatHTML
	}
	return formatMarkdown
}

// job is one configured conversion; output "" means stdout
type job struct {
	input  string
	output string
	format inputFormat
	opts   mdocx.Options
}

func (j *job) read() ([]byte, error) {
	if j.input == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(j.input)
}

func (j *job) run(ctx context.Context) error {
	src, err := j.read()
	if err != nil {
		return err
	}

	var data []byte
	switch detectFormat(j.format, j.input, src) {
	case formatHTML:
		data, err = mdocx.ConvertHTML(ctx, src, j.opts)
	default:
		data, err = mdocx.ConvertMarkdown(ctx, src, j.opts)
	}
	if err != nil {
		return err
	}

	if j.output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := atomic.WriteFile(j.output, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", j.output, err)
	}
	mdocx.WithField("output", j.output).Info("wrote %s", humanize.Bytes(uint64(len(data))))
	return nil
}

// parse renders the input to an HTML tree, the same way ConvertMarkdown does
func (j *job) parse() (*html.Node, error) {
	src, err := j.read()
	if err != nil {
		return nil, err
	}
	if detectFormat(j.format, j.input, src) == formatMarkdown {
		if j.opts.IncludeTOC {
			src = []byte(mdocx.InsertTOCMarker(string(src)))
		}
		if src, err = mdocx.RenderMarkdown(src); err != nil {
			return nil, err
		}
	}
	return html.Parse(bytes.NewReader(src))
}

func (j *job) printOutline(w io.Writer, width int) error {
	root, err := j.parse()
	if err != nil {
		return err
	}
	for _, line := range mdocx.Outline(mdocx.Build(root, j.opts)) {
		if _, err := fmt.Fprintln(w, wordwrap.String(line, width)); err != nil {
			return err
		}
	}
	return nil
}

// resolveOutput picks the output file. Without -o, DOCX goes to stdout unless
// stdout is a terminal, in which case the default file name is used.
func resolveOutput(path string) (string, error) {
	path = strings.TrimSpace(path)
	stdoutTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	switch path {
	case "":
		if stdoutTerminal {
			return defaultOutput, nil
		}
		return "", nil
	case "-":
		if stdoutTerminal {
			return "", errors.New("refusing to write DOCX to terminal; use -o/--output")
		}
		return "", nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	return path, nil
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
