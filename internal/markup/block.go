package markup

import (
	"regexp"
	"strconv"
	"strings"
)

type blockKind uint8

const (
	blockBlank blockKind = iota
	blockHeading
	blockFence
	blockQuote
	blockList
	blockBreak
	blockTable
	blockParagraph
)

var (
	headingPattern  = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	fencePattern    = regexp.MustCompile("^```(\\w*)")
	listItemPattern = regexp.MustCompile(`^(\s*)(\*|-|\+|\d+\.)\s+(.*)$`)
)

const fenceMarker = "```"

// classify decides the kind of the block starting at lines[i]. The order of
// the checks is the precedence between overlapping constructs.
func classify(lines []string, i int) blockKind {
	line := lines[i]
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return blockBlank
	case headingPattern.MatchString(line):
		return blockHeading
	case strings.HasPrefix(trimmed, fenceMarker):
		return blockFence
	case strings.HasPrefix(trimmed, ">"):
		return blockQuote
	case listItemPattern.MatchString(line):
		return blockList
	case isThematicBreak(trimmed):
		return blockBreak
	case opensTable(lines, i):
		return blockTable
	default:
		return blockParagraph
	}
}

// renderBlocks is the dispatcher: it owns the cursor and hands each span to
// its renderer. depth counts enclosing blockquotes.
func (r *Renderer) renderBlocks(b *strings.Builder, lines []string, depth int) {
	i := 0
	for i < len(lines) {
		switch classify(lines, i) {
		case blockBlank:
			i++
		case blockHeading:
			writeHeading(b, lines[i])
			i++
		case blockFence:
			i = writeFence(b, lines, i)
		case blockQuote:
			end := spanWhile(lines, i+1, isQuoteLine)
			r.writeQuote(b, lines[i:end], depth)
			i = end
		case blockList:
			end := spanWhile(lines, i+1, isListLine)
			writeList(b, lines[i:end])
			i = end
		case blockBreak:
			b.WriteString("<hr>")
			i++
		case blockTable:
			end := spanWhile(lines, i+2, isTableRow)
			writeTable(b, lines[i], lines[i+1], lines[i+2:end])
			i = end
		default:
			end := i + 1
			for end < len(lines) && classify(lines, end) == blockParagraph {
				end++
			}
			writeParagraph(b, lines[i:end])
			i = end
		}
	}
}

// spanWhile returns the first index at or after from whose line fails keep.
func spanWhile(lines []string, from int, keep func(string) bool) int {
	for from < len(lines) && keep(lines[from]) {
		from++
	}
	return from
}

func isListLine(line string) bool {
	return listItemPattern.MatchString(line)
}

// isThematicBreak reports whether trimmed is three or more of the same
// break character and nothing else.
func isThematicBreak(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	ch := trimmed[0]
	if ch != '-' && ch != '*' && ch != '_' {
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != ch {
			return false
		}
	}
	return true
}

func writeHeading(b *strings.Builder, line string) {
	m := headingPattern.FindStringSubmatch(line)
	level := strconv.Itoa(len(m[1]))
	b.WriteString("<h" + level + ">")
	b.WriteString(formatInline(strings.TrimSpace(m[2])))
	b.WriteString("</h" + level + ">")
}

// writeFence renders the code block opening at lines[start] and returns the
// index after its closing fence. Without a closing fence the block runs to
// the end of input.
func writeFence(b *strings.Builder, lines []string, start int) int {
	var lang string
	if m := fencePattern.FindStringSubmatch(strings.TrimSpace(lines[start])); m != nil {
		lang = m[1]
	}

	end := start + 1
	for end < len(lines) && strings.TrimSpace(lines[end]) != fenceMarker {
		end++
	}

	b.WriteString("<pre><code")
	if lang != "" {
		b.WriteString(` class="language-` + lang + `"`)
	}
	b.WriteString(">")
	b.WriteString(escapeHTML(strings.Join(lines[start+1:end], "\n")))
	b.WriteString("</code></pre>")

	if end < len(lines) {
		end++
	}
	return end
}

// writeParagraph joins trimmed lines with a space. A line ending in two or
// more spaces is joined with a hard break instead.
func writeParagraph(b *strings.Builder, lines []string) {
	var text strings.Builder
	last := len(lines) - 1
	for i, line := range lines {
		text.WriteString(strings.TrimSpace(line))
		if i == last {
			break
		}
		if strings.HasSuffix(line, "  ") {
			text.WriteString("<br>")
		} else {
			text.WriteByte(' ')
		}
	}
	b.WriteString("<p>")
	b.WriteString(formatInline(text.String()))
	b.WriteString("</p>")
}
