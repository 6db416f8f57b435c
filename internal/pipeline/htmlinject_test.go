package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestCSSInjection_InjectCSS - Placement rules
// ---------------------------------------------------------------------------

func TestCSSInjection_InjectCSS(t *testing.T) {
	t.Parallel()

	const css = "p{color:red}"

	tests := []struct {
		name string
		html string
		css  string
		want string
	}{
		{
			name: "empty CSS leaves HTML alone",
			html: "<p>x</p>",
			css:  "",
			want: "<p>x</p>",
		},
		{
			name: "before closing head",
			html: "<html><head><title>t</title></head><body></body></html>",
			css:  css,
			want: "<html><head><title>t</title><style>p{color:red}</style></head><body></body></html>",
		},
		{
			name: "closing head is matched case-insensitively",
			html: "<HTML><HEAD></HEAD></HTML>",
			css:  css,
			want: "<HTML><HEAD><style>p{color:red}</style></HEAD></HTML>",
		},
		{
			name: "after body open tag",
			html: `<body class="x"><p>x</p></body>`,
			css:  css,
			want: `<body class="x"><style>p{color:red}</style><p>x</p></body>`,
		},
		{
			name: "fragment is prepended",
			html: "<p>x</p>",
			css:  css,
			want: "<style>p{color:red}</style><p>x</p>",
		},
		{
			name: "closing tag in CSS is escaped",
			html: "<p>x</p>",
			css:  "p{}</style><script>",
			want: `<style>p{}<\/style><script></style><p>x</p>`,
		},
	}

	injector := &CSSInjection{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injector.InjectCSS(context.Background(), tt.html, tt.css)
			if got != tt.want {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCSSInjection_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	injector := &CSSInjection{}
	if got := injector.InjectCSS(ctx, "<p>x</p>", "p{}"); got != "<p>x</p>" {
		t.Errorf("cancelled context should return HTML unchanged, got %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestValidateCSS - Stylesheet parsing
// ---------------------------------------------------------------------------

func TestValidateCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		css       string
		wantRules int
		wantErr   error
	}{
		{"blank", "  \n", 0, nil},
		{"single rule", "body { margin: 0; }", 1, nil},
		{"several rules", "h1 { color: red; } p { color: blue; } @media print { p { color: black; } }", 3, nil},
		{"stray closing brace", "} body { margin: 0; }", 0, ErrInvalidCSS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n, err := ValidateCSS(tt.css)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != tt.wantRules {
				t.Errorf("rules = %d, want %d", n, tt.wantRules)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestInlineStyles - Rules moved into style attributes
// ---------------------------------------------------------------------------

func TestInlineStyles(t *testing.T) {
	t.Parallel()

	t.Run("rule applied to element", func(t *testing.T) {
		t.Parallel()

		in := `<html><head><style>h1 { color: #2c5f2d; }</style></head><body><h1>Title</h1></body></html>`
		got, err := InlineStyles(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(got, `<h1 style="color: #2c5f2d;">Title</h1>`) {
			t.Errorf("heading should carry the inlined rule: %q", got)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := InlineStyles(ctx, "<p>x</p>"); !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}
