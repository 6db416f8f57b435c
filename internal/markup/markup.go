package markup

import (
	"regexp"
	"strings"
)

// DefaultMaxQuoteDepth is the number of nested blockquote levels rendered as
// structure before deeper quote bodies fall back to literal text.
const DefaultMaxQuoteDepth = 32

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Options configures a Renderer.
type Options struct {
	// MaxQuoteDepth bounds blockquote recursion. Zero or negative selects
	// DefaultMaxQuoteDepth.
	MaxQuoteDepth int

	// OmitStyle drops the leading stylesheet so callers can place it
	// themselves.
	OmitStyle bool
}

// Renderer turns Markdown into HTML. It holds no per-call state and is safe
// for concurrent use.
type Renderer struct {
	maxQuoteDepth int
	omitStyle     bool
}

// New creates a Renderer with the given options.
func New(opts Options) *Renderer {
	depth := opts.MaxQuoteDepth
	if depth <= 0 {
		depth = DefaultMaxQuoteDepth
	}
	return &Renderer{
		maxQuoteDepth: depth,
		omitStyle:     opts.OmitStyle,
	}
}

// Render converts text to HTML. The stylesheet is emitted once, ahead of
// every block, unless the renderer was built with OmitStyle.
func (r *Renderer) Render(text string) string {
	var b strings.Builder
	b.Grow(len(text)*2 + len(Stylesheet))
	if !r.omitStyle {
		b.WriteString(Stylesheet)
	}
	r.renderBlocks(&b, splitLines(text), 0)
	return b.String()
}

var defaultRenderer = New(Options{})

// Transform converts text to a styled HTML fragment using default options.
// It never fails: constructs it cannot parse degrade to paragraphs.
func Transform(text string) string {
	return defaultRenderer.Render(text)
}

// splitLines normalizes line endings and splits text into lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(crlfOrCR.ReplaceAllString(text, "\n"), "\n")
}
