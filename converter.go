package md2html

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/markup"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.LiteConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Converter orchestrates the Markdown-to-HTML pipeline.
// Create with NewConverter(), use Convert() for conversion, and Close() when done.
// A Converter is safe for concurrent HTML conversion; PDF rendering shares one
// browser, so use a ConverterPool for parallel PDF output.
type Converter struct {
	cfg           converterConfig
	assetLoader   AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	document      *pipeline.DocumentWrapper
	pdfConverter  pdfConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithEngine, WithStyle, WithTimeout).
// Returns error if an option is invalid or asset loading fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			engine:    EngineLite,
			timeout:   defaultTimeout,
			normalize: true,
			template:  DefaultTemplate,
			lang:      "en",
		},
		cssInjector: &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return nil, err
	}
	c.cfg.engine = engine

	if c.cfg.maxQuoteDepth < 0 || c.cfg.maxQuoteDepth > MaxQuoteDepthLimit {
		return nil, fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidQuoteDepth, c.cfg.maxQuoteDepth, MaxQuoteDepthLimit)
	}

	// WithAssetLoader wins over WithAssetPath.
	if c.assetLoader == nil {
		c.assetLoader, err = NewAssetLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	tmpl, err := c.assetLoader.LoadTemplate(c.cfg.template)
	if err != nil {
		return nil, fmt.Errorf("loading template %q: %w", c.cfg.template, err)
	}
	c.document, err = pipeline.NewDocumentWrapper(tmpl)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}

	c.preprocessor = &pipeline.CommonMarkPreprocessor{Normalize: c.cfg.normalize}

	switch c.cfg.engine {
	case EngineGFM:
		c.htmlConverter = pipeline.NewGoldmarkConverter()
	default:
		c.htmlConverter = pipeline.NewLiteConverter(c.cfg.maxQuoteDepth)
	}

	// The browser itself starts on the first PDF request.
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert runs the pipeline and returns the rendered HTML, plus a PDF when
// input.PDF is set. The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	body, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	// Rewrite relative paths to absolute file:// URLs (if source directory provided)
	if input.SourceDir != "" {
		body, err = pipeline.RewriteRelativePaths(body, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	htmlContent, err := c.applyStyles(ctx, body, input.CSS)
	if err != nil {
		return nil, err
	}

	var page string
	if input.Standalone || input.PDF || c.cfg.inlineStyles {
		page, err = c.wrapDocument(ctx, htmlContent, body, input)
		if err != nil {
			return nil, err
		}
	}
	if input.Standalone {
		htmlContent = page
	}

	if c.cfg.inlineStyles {
		htmlContent, err = pipeline.InlineStyles(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("inlining styles: %w", err)
		}
	}

	res := &ConvertResult{HTML: []byte(htmlContent)}
	if !input.PDF {
		return res, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, page, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// applyStyles places the built-in stylesheet ahead of the fragment, followed
// by the converter style and the per-input CSS so later rules win.
func (c *Converter) applyStyles(ctx context.Context, body, inputCSS string) (string, error) {
	extra := c.cfg.resolvedStyle
	if inputCSS != "" {
		if extra != "" {
			extra += "\n"
		}
		extra += inputCSS
	}

	if _, err := pipeline.ValidateCSS(extra); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCSS, err)
	}

	out := c.cssInjector.InjectCSS(ctx, body, extra)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if !c.cfg.omitBaseStyle {
		out = markup.Stylesheet + out
	}
	return out, nil
}

// wrapDocument renders the document template. Without an explicit title the
// first level-one heading of body is used, then the input's fallback title.
func (c *Converter) wrapDocument(ctx context.Context, fragment, body string, input Input) (string, error) {
	title := input.Title
	if title == "" {
		title = pipeline.ExtractTitle(body)
	}
	if title == "" {
		title = input.FallbackTitle
	}
	out, err := c.document.Wrap(ctx, pipeline.DocumentData{
		Title: title,
		Lang:  c.cfg.lang,
		Date:  input.Date,
		Body:  fragment,
	})
	if err != nil {
		if errors.Is(err, pipeline.ErrDocumentRender) {
			return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
		}
		return "", err
	}
	return out, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// Called during NewConverter() after options are applied and the asset loader is set.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: reading %q: %v", ErrStyleNotFound, input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSSText(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their input validated earlier by Config.Validate() at config load time.
func (c *Converter) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if input.PDF {
		if err := input.Page.Validate(); err != nil {
			return err
		}
	}
	return nil
}
