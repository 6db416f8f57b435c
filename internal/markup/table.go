package markup

import (
	"regexp"
	"strings"
)

type alignment uint8

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

func (a alignment) String() string {
	switch a {
	case alignCenter:
		return "center"
	case alignRight:
		return "right"
	default:
		return "left"
	}
}

var delimiterCellPattern = regexp.MustCompile(`^:?-+:?$`)

func isTableRow(line string) bool {
	return strings.Contains(line, "|")
}

// opensTable reports whether lines[i] is a table header followed by a
// delimiter row.
func opensTable(lines []string, i int) bool {
	return i+1 < len(lines) && isTableRow(lines[i]) && isDelimiterRow(lines[i+1])
}

func isDelimiterRow(line string) bool {
	if !isTableRow(line) {
		return false
	}
	for _, cell := range splitRow(line) {
		if !delimiterCellPattern.MatchString(cell) {
			return false
		}
	}
	return true
}

// splitRow drops one leading and one trailing pipe, then splits on the rest.
func splitRow(line string) []string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	cells := strings.Split(s, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

func parseAlignment(cell string) alignment {
	switch {
	case len(cell) > 1 && strings.HasPrefix(cell, ":") && strings.HasSuffix(cell, ":"):
		return alignCenter
	case strings.HasSuffix(cell, ":"):
		return alignRight
	default:
		return alignLeft
	}
}

// writeTable renders a table. The header decides the column count: short
// rows are padded with empty cells and surplus cells are dropped.
func writeTable(b *strings.Builder, header, delimiter string, body []string) {
	headers := splitRow(header)
	delims := splitRow(delimiter)
	aligns := make([]alignment, len(headers))
	for i := range aligns {
		if i < len(delims) {
			aligns[i] = parseAlignment(delims[i])
		}
	}

	b.WriteString(`<div class="table-wrapper"><table class="md-table"><thead><tr>`)
	for i, h := range headers {
		writeCell(b, "th", aligns[i], h)
	}
	b.WriteString("</tr></thead><tbody>")
	for _, line := range body {
		cells := splitRow(line)
		b.WriteString("<tr>")
		for i := range headers {
			var text string
			if i < len(cells) {
				text = cells[i]
			}
			writeCell(b, "td", aligns[i], text)
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table></div>")
}

func writeCell(b *strings.Builder, tag string, align alignment, text string) {
	b.WriteString("<" + tag + ` style="text-align: ` + align.String() + `">`)
	b.WriteString(formatInline(text))
	b.WriteString("</" + tag + ">")
}
