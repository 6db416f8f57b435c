package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/inliner"
	"github.com/aymerick/douceur/parser"
)

// Sentinel errors for stylesheet handling.
var (
	ErrInvalidCSS  = errors.New("invalid CSS")
	ErrInlineStyle = errors.New("inlining styles failed")
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized so it cannot close the style element.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// ValidateCSS parses css and reports the number of rules it holds.
// Content the parser rejects is returned as ErrInvalidCSS.
func ValidateCSS(css string) (int, error) {
	if strings.TrimSpace(css) == "" {
		return 0, nil
	}
	sheet, err := parser.Parse(css)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCSS, err)
	}
	return len(sheet.Rules), nil
}

// InlineStyles moves every rule of the document's <style> blocks into
// style attributes of the matching elements. Rules that cannot be inlined,
// such as :hover, stay in a <style> block. The result is a full document.
func InlineStyles(ctx context.Context, htmlContent string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, err := inliner.Inline(htmlContent)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInlineStyle, err)
	}
	return out, nil
}

var _ CSSInjector = (*CSSInjection)(nil)
