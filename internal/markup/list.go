package markup

import "strings"

type listKind uint8

const (
	unorderedList listKind = iota
	orderedList
)

func (k listKind) tag() string {
	if k == orderedList {
		return "ol"
	}
	return "ul"
}

// frame is one open list level. Every frame on the stack has an open item.
type frame struct {
	width int
	kind  listKind
}

// writeList renders a run of list lines. Nesting is driven by the leading
// whitespace width of each line, compared against a stack of frames whose
// widths strictly increase from bottom to top.
func writeList(b *strings.Builder, lines []string) {
	stack := make([]frame, 0, 4)

	closeTop := func() {
		top := stack[len(stack)-1]
		b.WriteString("</li></" + top.kind.tag() + ">")
		stack = stack[:len(stack)-1]
	}
	open := func(f frame) {
		b.WriteString("<" + f.kind.tag() + ">")
		stack = append(stack, f)
	}

	for _, line := range lines {
		m := listItemPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		cur := frame{width: len(m[1]), kind: unorderedList}
		if strings.HasSuffix(m[2], ".") {
			cur.kind = orderedList
		}

		for len(stack) > 0 && stack[len(stack)-1].width > cur.width {
			closeTop()
		}

		switch {
		case len(stack) == 0 || cur.width > stack[len(stack)-1].width:
			open(cur)
		case cur.kind != stack[len(stack)-1].kind:
			closeTop()
			open(cur)
		default:
			b.WriteString("</li>")
		}

		b.WriteString("<li>")
		b.WriteString(formatInline(strings.TrimSpace(m[3])))
	}

	for len(stack) > 0 {
		closeTop()
	}
}
