package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-md2html/internal/markup"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
// Implementations return a body fragment without any stylesheet.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// LiteConverter renders with the built-in markup package.
type LiteConverter struct {
	renderer *markup.Renderer
}

// NewLiteConverter creates a LiteConverter. maxQuoteDepth <= 0 selects the
// markup package default.
func NewLiteConverter(maxQuoteDepth int) *LiteConverter {
	return &LiteConverter{
		renderer: markup.New(markup.Options{
			MaxQuoteDepth: maxQuoteDepth,
			OmitStyle:     true,
		}),
	}
}

// ToHTML converts Markdown content to an HTML fragment.
func (c *LiteConverter) ToHTML(ctx context.Context, content string) (string, error) {
	return runWithContext(ctx, func() (string, error) {
		return c.renderer.Render(content), nil
	})
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	return runWithContext(ctx, func() (string, error) {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
		return buf.String(), nil
	})
}

// runWithContext runs convert in a goroutine so a cancelled context returns
// immediately. Neither renderer can be interrupted once started.
func runWithContext(ctx context.Context, convert func() (string, error)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		out, err := convert()
		done <- result{html: out, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Compile-time interface checks.
var (
	_ HTMLConverter = (*LiteConverter)(nil)
	_ HTMLConverter = (*GoldmarkConverter)(nil)
)
