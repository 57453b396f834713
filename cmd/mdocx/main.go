package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/benjaminschreck/go-mdocx/pkg/mdocx"
	"github.com/spf13/pflag"
	"pkt.systems/version"
)

const defaultOutput = "my-document.docx"

func init() {
	version.SetDefaultModule("github.com/benjaminschreck/go-mdocx")
}

func main() {
	var (
		themeName    string
		includeTOC   bool
		legacyInline bool
		formatFlag   string
		outPath      string
		configPath   string
		logLevel     string
		outline      bool
		watch        bool
		listThemes   bool
		showVersion  bool
	)

	flags := pflag.NewFlagSet("mdocx", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", "", "Theme name (minimal|elegant)")
	flags.BoolVar(&includeTOC, "toc", false, "Insert a table of contents after the first heading")
	flags.BoolVar(&legacyInline, "legacy-inline", false, "Use the per-delimiter inline scanner")
	flags.StringVar(&formatFlag, "format", "auto", "Input format: auto|markdown|html")
	flags.StringVarP(&outPath, "output", "o", "", "Output file, - for stdout (default "+defaultOutput+" on a terminal)")
	flags.StringVar(&configPath, "config", "", "YAML configuration file")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug|info|warn|error|off")
	flags.BoolVar(&outline, "outline", false, "Print the document outline instead of writing DOCX")
	flags.BoolVar(&watch, "watch", false, "Convert again whenever the input file changes")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mdocx [flags] [input]\n")
		fmt.Fprintln(os.Stderr, "\nConverts Markdown or HTML to DOCX. Without an input, stdin is read.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}
	if listThemes {
		printThemes()
		return
	}

	config, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if logLevel != "" {
		config.LogLevel = logLevel
	}
	if flags.Changed("theme") {
		config.Theme = themeName
	}
	if flags.Changed("toc") {
		config.IncludeTOC = includeTOC
	}
	if flags.Changed("legacy-inline") {
		config.LegacyInline = legacyInline
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n\n", err)
		printThemes()
		os.Exit(2)
	}
	mdocx.SetGlobalConfig(config)

	opts, err := config.Options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "options: %v\n", err)
		os.Exit(2)
	}

	args := flags.Args()
	if len(args) > 1 {
		flags.Usage()
		os.Exit(2)
	}
	input := ""
	if len(args) == 1 && args[0] != "-" {
		input = args[0]
	}

	format, err := parseFormat(formatFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --format %q: %v\n", formatFlag, err)
		os.Exit(2)
	}

	j := &job{
		input:  input,
		format: format,
		opts:   opts,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if outline {
		if err := j.printOutline(os.Stdout, terminalWidth(defaultWidth)); err != nil {
			fmt.Fprintf(os.Stderr, "outline: %v\n", err)
			os.Exit(1)
		}
		return
	}

	j.output, err = resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "output: %v\n", err)
		os.Exit(2)
	}

	if watch {
		if input == "" || j.output == "" {
			fmt.Fprintln(os.Stderr, "--watch needs an input file and an output file")
			os.Exit(2)
		}
		if err := watchInput(ctx, j); err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := j.run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "convert: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*mdocx.Config, error) {
	if strings.TrimSpace(path) == "" {
		return mdocx.ConfigFromEnvironment(), nil
	}
	return mdocx.LoadConfigFile(path)
}

func printThemes() {
	for _, theme := range mdocx.Themes() {
		fmt.Fprintln(os.Stdout, theme)
	}
}
