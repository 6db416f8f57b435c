package markup

import (
	"strings"
	"unicode"
)

func isQuoteLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), ">")
}

// stripQuotePrefix removes leading whitespace, the quote marker and at most
// one space or tab after it.
func stripQuotePrefix(line string) string {
	s := strings.TrimLeftFunc(line, unicode.IsSpace)
	s = strings.TrimPrefix(s, ">")
	if s != "" && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	return s
}

// writeQuote renders the dedented body through a nested dispatcher pass.
// Past the depth limit the dedented body is kept as escaped literal text.
func (r *Renderer) writeQuote(b *strings.Builder, lines []string, depth int) {
	b.WriteString("<blockquote>")
	if depth >= r.maxQuoteDepth {
		parts := make([]string, 0, len(lines))
		for _, line := range lines {
			if t := strings.TrimSpace(stripQuotePrefix(line)); t != "" {
				parts = append(parts, t)
			}
		}
		b.WriteString("<p>")
		b.WriteString(escapeHTML(strings.Join(parts, " ")))
		b.WriteString("</p>")
	} else {
		inner := make([]string, len(lines))
		for i, line := range lines {
			inner[i] = stripQuotePrefix(line)
		}
		r.renderBlocks(b, inner, depth+1)
	}
	b.WriteString("</blockquote>")
}
