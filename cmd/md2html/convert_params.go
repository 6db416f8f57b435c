package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/dateutil"
)

// conversionParams holds per-run settings shared by every file.
type conversionParams struct {
	css        string // contents of --css
	standalone bool
	title      string
	date       string // resolved once per run
	pdf        bool
	page       *md2html.PageSettings
	now        func() time.Time
}

// buildConversionParams reads the --css file, stamps the document date and
// captures PDF settings from the resolved config.
func buildConversionParams(f *convertFlags, cfg *config.Config, env *Environment) (*conversionParams, error) {
	css, err := readCSSFile(f.style.css)
	if err != nil {
		return nil, err
	}

	now := env.Now
	if now == nil {
		now = time.Now
	}

	date, err := dateutil.Resolve(cfg.Document.Date, now())
	if err != nil {
		return nil, fmt.Errorf("%w: document.date: %v", config.ErrInvalidValue, err)
	}

	return &conversionParams{
		css:        css,
		standalone: cfg.Document.Standalone,
		title:      cfg.Document.Title,
		date:       date,
		pdf:        cfg.PDF.Enabled,
		page:       buildPageSettings(cfg),
		now:        now,
	}, nil
}

// input builds the library input for one document. inputPath is empty for
// standard input.
func (p *conversionParams) input(markdown, inputPath string) md2html.Input {
	in := md2html.Input{
		Markdown:   markdown,
		CSS:        p.css,
		Standalone: p.standalone,
		PDF:        p.pdf,
		Page:       p.page,
	}

	if p.standalone || p.pdf {
		in.Title = p.title
		in.FallbackTitle = fileTitle(inputPath)
		in.Date = p.date
	}

	// Chrome loads the page from a temp file, so relative images must be
	// anchored to the source directory.
	if p.pdf && inputPath != "" {
		if dir, err := filepath.Abs(filepath.Dir(inputPath)); err == nil {
			in.SourceDir = dir
		}
	}

	return in
}

// fileTitle returns the input file name without its extension, or "" for
// standard input. The converter uses it only when the rendered document has
// no level-one heading.
func fileTitle(inputPath string) string {
	if inputPath == "" {
		return ""
	}
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// buildPageSettings returns PDF page settings, or nil when PDF export is
// off. Unset fields keep their defaults.
func buildPageSettings(cfg *config.Config) *md2html.PageSettings {
	if !cfg.PDF.Enabled {
		return nil
	}

	page := cfg.PDF.Page
	if page.Size == "" && page.Orientation == "" && page.Margin == 0 {
		return nil
	}

	ps := md2html.DefaultPageSettings()
	if page.Size != "" {
		ps.Size = page.Size
	}
	if page.Orientation != "" {
		ps.Orientation = page.Orientation
	}
	if page.Margin != 0 {
		ps.Margin = page.Margin
	}
	return ps
}

// readCSSFile returns the contents of the --css file, or "" when unset.
func readCSSFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(data), nil
}
