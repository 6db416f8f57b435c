//go:build integration

package md2html

// Notes:
// - Requires a Chrome/Chromium binary; rod downloads one if none is found
// - Set ROD_BROWSER_BIN to use a pre-installed browser, ROD_NO_SANDBOX=1 in
//   containers

import (
	"bytes"
	"context"
	"testing"
	"time"
)

const integrationTimeout = 30 * time.Second

func assertValidPDF(t *testing.T, data []byte) {
	t.Helper()

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("data does not have PDF magic bytes, got prefix: %q", data[:min(10, len(data))])
	}
	if len(data) < 100 {
		t.Errorf("PDF data suspiciously small: %d bytes", len(data))
	}
}

func TestConverter_PDF_Integration(t *testing.T) {
	pool := NewConverterPool(2, WithTimeout(integrationTimeout))
	t.Cleanup(func() { _ = pool.Close() })

	tests := []struct {
		name string
		page *PageSettings
	}{
		{"default page", nil},
		{"a4 landscape", &PageSettings{Size: PageSizeA4, Orientation: OrientationLandscape, Margin: 1}},
		{"legal portrait", &PageSettings{Size: PageSizeLegal, Orientation: OrientationPortrait, Margin: MinMargin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := pool.Acquire()
			if err != nil {
				t.Fatalf("Acquire() error = %v", err)
			}
			defer pool.Release(conv)

			ctx, cancel := context.WithTimeout(context.Background(), integrationTimeout)
			defer cancel()

			res, err := conv.Convert(ctx, Input{
				Markdown: "# Report\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n> quoted",
				PDF:      true,
				Page:     tt.page,
			})
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			assertValidPDF(t, res.PDF)
			if len(res.HTML) == 0 {
				t.Error("HTML should be returned alongside the PDF")
			}
		})
	}
}

func TestRodRenderer_RenderFromFile_DeadlineExceeded(t *testing.T) {
	r := newRodRenderer(integrationTimeout)
	t.Cleanup(func() { _ = r.Close() })

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	if _, err := r.RenderFromFile(ctx, "/nonexistent.html", nil); err == nil {
		t.Error("expected an error for an expired deadline")
	}
}
