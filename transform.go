package md2html

import "github.com/alnah/go-md2html/internal/markup"

// Stylesheet is the built-in stylesheet, a single <style> element, that
// leads every fragment produced by Transform.
const Stylesheet = markup.Stylesheet

// Transform converts Markdown text to an HTML fragment with the built-in
// renderer and default options. The fragment starts with Stylesheet. Empty
// input yields the stylesheet alone.
//
// Transform never fails and needs no setup; use a Converter for extra CSS,
// GFM rendering, standalone documents or PDF output.
func Transform(markdown string) string {
	return markup.Transform(markdown)
}
