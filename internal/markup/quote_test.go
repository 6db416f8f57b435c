package markup

import (
	"strings"
	"testing"
)

func TestWriteQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heading inside quote",
			input: "> # Title",
			want:  "<blockquote><h1>Title</h1></blockquote>",
		},
		{
			name:  "lines joined into one paragraph",
			input: "> a\n> b",
			want:  "<blockquote><p>a b</p></blockquote>",
		},
		{
			name:  "marker without space",
			input: ">tight",
			want:  "<blockquote><p>tight</p></blockquote>",
		},
		{
			name:  "indented marker",
			input: "   > indented",
			want:  "<blockquote><p>indented</p></blockquote>",
		},
		{
			name:  "nested quote",
			input: "> > inner",
			want:  "<blockquote><blockquote><p>inner</p></blockquote></blockquote>",
		},
		{
			name:  "blank line ends the quote",
			input: "> a\n\n> b",
			want:  "<blockquote><p>a</p></blockquote><blockquote><p>b</p></blockquote>",
		},
		{
			name:  "empty quote line splits paragraphs",
			input: "> a\n>\n> b",
			want:  "<blockquote><p>a</p><p>b</p></blockquote>",
		},
		{
			name:  "list inside quote",
			input: "> - a\n>   - b",
			want:  "<blockquote><ul><li>a<ul><li>b</li></ul></li></ul></blockquote>",
		},
		{
			name:  "table inside quote",
			input: "> a|b\n> -|-:",
			want: `<blockquote><div class="table-wrapper"><table class="md-table"><thead><tr>` +
				`<th style="text-align: left">a</th><th style="text-align: right">b</th>` +
				`</tr></thead><tbody></tbody></table></div></blockquote>`,
		},
		{
			name:  "fence inside quote",
			input: "> ```sh\n> ls -l\n> ```",
			want:  `<blockquote><pre><code class="language-sh">ls -l</code></pre></blockquote>`,
		},
		{
			name:  "only one space after the marker is stripped",
			input: ">    - a",
			want:  "<blockquote><ul><li>a</li></ul></blockquote>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := renderFragment(tt.input)
			if got != tt.want {
				t.Errorf("Render(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripQuotePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want string
	}{
		{"> a", "a"},
		{">a", "a"},
		{">  a", " a"},
		{">\ta", "a"},
		{"  > a", "a"},
		{">", ""},
		{"> > a", "> a"},
	}

	for _, tt := range tests {
		if got := stripQuotePrefix(tt.line); got != tt.want {
			t.Errorf("stripQuotePrefix(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestQuoteDepthLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "body past the limit is literal text",
			input: "> > <x> **y**",
			want:  "<blockquote><blockquote><p>&lt;x&gt; **y**</p></blockquote></blockquote>",
		},
		{
			name:  "deeper markers stay literal",
			input: "> > > a\n> > b",
			want:  "<blockquote><blockquote><p>&gt; a b</p></blockquote></blockquote>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := New(Options{MaxQuoteDepth: 1, OmitStyle: true})
			if got := r.Render(tt.input); got != tt.want {
				t.Errorf("Render(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
		})
	}

	t.Run("pathological nesting is bounded", func(t *testing.T) {
		t.Parallel()

		input := strings.Repeat("> ", 10000) + "deep"
		got := renderFragment(input)

		wantQuotes := DefaultMaxQuoteDepth + 1
		if opened := strings.Count(got, "<blockquote>"); opened != wantQuotes {
			t.Errorf("<blockquote> count = %d, want %d", opened, wantQuotes)
		}
		if closed := strings.Count(got, "</blockquote>"); closed != wantQuotes {
			t.Errorf("</blockquote> count = %d, want %d", closed, wantQuotes)
		}
		if !strings.Contains(got, "deep") {
			t.Error("literal fallback lost the quoted text")
		}
	})

	t.Run("zero selects the default", func(t *testing.T) {
		t.Parallel()

		for _, depth := range []int{0, -3} {
			if got := New(Options{MaxQuoteDepth: depth}).maxQuoteDepth; got != DefaultMaxQuoteDepth {
				t.Errorf("New(MaxQuoteDepth: %d) depth = %d, want %d", depth, got, DefaultMaxQuoteDepth)
			}
		}
	})
}
