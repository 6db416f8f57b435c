package pipeline

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// byteOrderMark is stripped from the start of input.
const byteOrderMark = "\uFEFF"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Blank lines at the end of the document
	trailingBlankLines = regexp.MustCompile(`(?:\n[ \t]*)+$`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor cleans Markdown before it reaches a converter.
type CommonMarkPreprocessor struct {
	// Normalize applies Unicode NFC so composed and decomposed accents
	// render identically and compare equal in emphasis spans.
	Normalize bool
}

// PreprocessMarkdown applies all transformations to prepare Markdown for conversion.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	content = normalizeLineEndings(content)
	content = trimTrailingBlankLines(content)
	if p.Normalize {
		content = normalizeUnicode(content)
	}
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// trimTrailingBlankLines drops blank lines at the end of content. Spaces on
// the last non-blank line are kept, since it may sit in an open fence.
func trimTrailingBlankLines(content string) string {
	return trailingBlankLines.ReplaceAllString(content, "")
}

// normalizeUnicode converts content to Normalization Form C.
func normalizeUnicode(content string) string {
	if norm.NFC.IsNormalString(content) {
		return content
	}
	return norm.NFC.String(content)
}
