package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlag wraps flag parsing failures.
var ErrInvalidFlag = errors.New("invalid flag")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds Markdown engine flags.
type renderFlags struct {
	engine        string
	maxQuoteDepth int
	noNormalize   bool
}

// styleFlags holds stylesheet flags.
type styleFlags struct {
	style   string // Embedded name, CSS file path, or CSS text
	css     string // Extra CSS file appended after the style
	noStyle bool   // Drop the built-in stylesheet
	inline  bool   // Move rules into style attributes
}

// documentFlags holds standalone document flags.
type documentFlags struct {
	standalone bool
	title      string
	lang       string
	date       string
}

// assetFlags holds template and asset directory flags.
type assetFlags struct {
	template  string
	assetPath string
}

// pageFlags holds PDF page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// pdfFlags holds PDF export flags.
type pdfFlags struct {
	enabled bool
	page    pageFlags
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	workers  int
	timeout  string
	render   renderFlags
	style    styleFlags
	document documentFlags
	assets   assetFlags
	pdf      pdfFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addRenderFlags adds Markdown engine flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.engine, "engine", "", "markdown engine: lite, gfm")
	fs.IntVar(&f.maxQuoteDepth, "max-quote-depth", 0, "blockquote nesting limit (0 = default 32)")
	fs.BoolVar(&f.noNormalize, "no-normalize", false, "skip Unicode normalization")
}

// addStyleFlags adds stylesheet flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.css, "css", "", "extra CSS file")
	fs.BoolVar(&f.noStyle, "no-style", false, "omit the built-in stylesheet")
	fs.BoolVar(&f.inline, "inline-styles", false, "inline CSS rules into style attributes")
}

// addDocumentFlags adds standalone document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a complete HTML document")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = auto from H1)")
	fs.StringVar(&f.lang, "lang", "", "document language (default: en)")
	fs.StringVar(&f.date, "date", "", "document date: text, auto, or auto:LAYOUT")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.template, "template", "", "document template name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addPDFFlags adds PDF export flags to a FlagSet.
func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.BoolVar(&f.enabled, "pdf", false, "also write a PDF (requires Chrome)")
	fs.StringVarP(&f.page.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.page.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.page.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// newConvertFlagSet registers every convert flag on a fresh FlagSet bound to f.
// Shared by parseConvertFlags and shell completion.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "conversion timeout (e.g., 30s, 2m)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	addStyleFlags(fs, &f.style)
	addDocumentFlags(fs, &f.document)
	addAssetFlags(fs, &f.assets)
	addPDFFlags(fs, &f.pdf)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Usage goes to usageOut on -h or a parse error.
func parseConvertFlags(args []string, usageOut io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(usageOut)
	fs.Usage = func() { printConvertUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	return f, fs.Args(), nil
}
