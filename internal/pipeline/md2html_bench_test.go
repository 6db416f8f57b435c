//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// BenchmarkToHTML compares both engines on the same inputs.
func BenchmarkToHTML(b *testing.B) {
	engines := map[string]HTMLConverter{
		"lite": NewLiteConverter(0),
		"gfm":  NewGoldmarkConverter(),
	}
	ctx := context.Background()

	inputs := []struct {
		name    string
		content string
	}{
		{"minimal", "# Hello\n\nWorld"},
		{"nested_lists", generateNestedList(6)},
		{"tables", generateTables(5)},
		{"mixed_small", generateMixed(10)},
		{"mixed_large", generateMixed(200)},
	}

	for engine, converter := range engines {
		for _, input := range inputs {
			b.Run(engine+"/"+input.name, func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := converter.ToHTML(ctx, input.content); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkLiteDeepQuote measures the depth-limited blockquote path.
func BenchmarkLiteDeepQuote(b *testing.B) {
	converter := NewLiteConverter(0)
	ctx := context.Background()
	content := strings.Repeat(">", 5000) + " deep"

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := converter.ToHTML(ctx, content); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInjectCSS measures style block placement on a standalone document.
func BenchmarkInjectCSS(b *testing.B) {
	injector := &CSSInjection{}
	ctx := context.Background()
	doc := "<html><head><title>t</title></head><body>" + generateMixed(50) + "</body></html>"

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = injector.InjectCSS(ctx, doc, "p { color: red; }")
	}
}

func generateNestedList(depth int) string {
	var sb strings.Builder
	for i := 0; i < depth; i++ {
		sb.WriteString(strings.Repeat("  ", i))
		sb.WriteString(fmt.Sprintf("- level %d with **bold**\n", i+1))
	}
	for i := depth - 1; i >= 0; i-- {
		sb.WriteString(strings.Repeat("  ", i))
		sb.WriteString(fmt.Sprintf("%d. back at %d\n", i+1, i+1))
	}
	return sb.String()
}

func generateTables(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("| Left | Center | Right |\n")
		sb.WriteString("|:-----|:------:|------:|\n")
		for j := 0; j < 10; j++ {
			sb.WriteString(fmt.Sprintf("| a%d | `b%d` | *c%d* |\n", j, j, j))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func generateMixed(sections int) string {
	var sb strings.Builder
	sb.WriteString("# Document Title\n\n")
	for i := 0; i < sections; i++ {
		sb.WriteString(fmt.Sprintf("## Section %d\n\n", i+1))
		sb.WriteString("Paragraph with [a link](https://example.com), `code` and ~~old~~ text.\n\n")
		sb.WriteString("- one\n- two\n  - nested\n\n")
		sb.WriteString("> quoted *text*\n\n")
		if i%3 == 0 {
			sb.WriteString("```go\nfunc main() {}\n```\n\n")
		}
	}
	return sb.String()
}
