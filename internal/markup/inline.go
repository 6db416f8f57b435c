package markup

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Held fragments are replaced by private-use tokens until the cascade ends,
// so later rules never see generated tags, URLs or code. The two runes are
// themselves held when they occur in the input.
const (
	holdOpen  = "\uE000"
	holdClose = "\uE001"
)

var (
	codeSpanPattern   = regexp.MustCompile("`(.*?)`")
	imagePattern      = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	linkPattern       = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	boldItalicPattern = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	boldPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern     = regexp.MustCompile(`\*(.+?)\*`)
	strikePattern     = regexp.MustCompile(`~~(.+?)~~`)

	heldToken = regexp.MustCompile(holdOpen + `([0-9]+)` + holdClose)

	htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(`"`, "&quot;")
)

// inlineRule rewrites every match of pattern. Rules with expand build their
// output from the submatches; the others expand template.
type inlineRule struct {
	pattern  *regexp.Regexp
	template string
	expand   func(h *held, groups []string) string
}

// inlineRules run in this order. Code, images and links go first so that
// emphasis markers inside them are never interpreted.
var inlineRules = []inlineRule{
	{pattern: codeSpanPattern, expand: expandCodeSpan},
	{pattern: imagePattern, expand: expandImage},
	{pattern: linkPattern, expand: expandLink},
	{pattern: boldItalicPattern, template: "<b><i>${1}</i></b>"},
	{pattern: boldPattern, template: "<b>${1}</b>"},
	{pattern: italicPattern, template: "<i>${1}</i>"},
	{pattern: strikePattern, template: "<del>${1}</del>"},
}

// formatInline applies the inline cascade to a run of text. U+E000 and
// U+E001 are reserved for tokens; occurrences in text are held like code
// and come back unchanged.
func formatInline(text string) string {
	if text == "" {
		return ""
	}

	h := &held{}
	text = h.holdSentinels(text)
	for _, rule := range inlineRules {
		if rule.expand == nil {
			text = rule.pattern.ReplaceAllString(text, rule.template)
			continue
		}
		text = replaceSubmatchFunc(rule.pattern, text, func(groups []string) string {
			return rule.expand(h, groups)
		})
	}
	return h.restore(text)
}

func expandCodeSpan(h *held, groups []string) string {
	return h.holdText("<code>"+escapeHTML(groups[1])+"</code>", groups[1])
}

// expandImage uses the plain text of held code spans in the alt attribute.
func expandImage(h *held, groups []string) string {
	alt := h.plainText(groups[1])
	return h.hold(`<img src="` + escapeAttr(groups[2]) + `" alt="` + escapeAttr(alt) + `">`)
}

// expandLink holds only the tags so the label stays open to emphasis.
func expandLink(h *held, groups []string) string {
	return h.hold(`<a href="`+escapeAttr(groups[2])+`">`) + groups[1] + h.hold("</a>")
}

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// replaceSubmatchFunc is ReplaceAllStringFunc with access to submatches.
func replaceSubmatchFunc(re *regexp.Regexp, text string, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, loc := range matches {
		b.WriteString(text[last:loc[0]])
		groups := make([]string, len(loc)/2)
		for g := range groups {
			if loc[2*g] >= 0 {
				groups[g] = text[loc[2*g]:loc[2*g+1]]
			}
		}
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// held stores fragments removed from the text during the cascade, along
// with the plain text each one stands for inside attributes.
type held struct {
	items []string
	text  []string
}

func (h *held) hold(fragment string) string {
	return h.holdText(fragment, "")
}

func (h *held) holdText(fragment, plain string) string {
	h.items = append(h.items, fragment)
	h.text = append(h.text, plain)
	return holdOpen + strconv.Itoa(len(h.items)-1) + holdClose
}

// holdSentinels replaces every token rune already present in text with a
// token for itself.
func (h *held) holdSentinels(text string) string {
	if !strings.ContainsAny(text, holdOpen+holdClose) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\uE000' || r == '\uE001' {
			b.WriteString(h.holdText(text[i:i+size], text[i:i+size]))
		} else {
			b.WriteString(text[i : i+size])
		}
		i += size
	}
	return b.String()
}

// plainText resolves tokens in text to their plain form. Plain text only
// refers to earlier tokens, so the recursion terminates.
func (h *held) plainText(text string) string {
	return heldToken.ReplaceAllStringFunc(text, func(tok string) string {
		idx, err := strconv.Atoi(tok[len(holdOpen) : len(tok)-len(holdClose)])
		if err != nil || idx >= len(h.text) {
			return ""
		}
		return h.plainText(h.text[idx])
	})
}

// restore puts held fragments back. A fragment can only contain tokens
// created before it, so resolving in order terminates.
func (h *held) restore(text string) string {
	if len(h.items) == 0 {
		return text
	}
	for i, item := range h.items {
		h.items[i] = h.expandTokens(item)
	}
	return h.expandTokens(text)
}

func (h *held) expandTokens(text string) string {
	return heldToken.ReplaceAllStringFunc(text, func(tok string) string {
		idx, err := strconv.Atoi(tok[len(holdOpen) : len(tok)-len(holdClose)])
		if err != nil || idx >= len(h.items) {
			return ""
		}
		return h.items[idx]
	})
}
