package md2html

import (
	"context"
	"errors"
	"os"
	"testing"
)

// mockRenderer implements pdfRenderer for testing.
type mockRenderer struct {
	Result      []byte
	Err         error
	CalledWith  string
	CalledOpts  *pdfOptions
	FileContent string
	Closed      bool
}

func (m *mockRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	m.CalledWith = filePath
	m.CalledOpts = opts
	if data, err := os.ReadFile(filePath); err == nil {
		m.FileContent = string(data)
	}
	return m.Result, m.Err
}

func (m *mockRenderer) Close() error {
	m.Closed = true
	return nil
}

func TestRodConverter_ToPDF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		html    string
		mock    *mockRenderer
		wantErr bool
	}{
		{
			name: "successful render returns PDF bytes",
			html: "<html><body>Test</body></html>",
			mock: &mockRenderer{Result: []byte("%PDF-1.4 fake pdf content")},
		},
		{
			name:    "renderer error propagates",
			html:    "<html></html>",
			mock:    &mockRenderer{Err: errors.New("browser crashed")},
			wantErr: true,
		},
		{
			name: "empty HTML is valid",
			html: "",
			mock: &mockRenderer{Result: []byte("%PDF-1.4")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			converter := &rodConverter{renderer: tt.mock}
			opts := &pdfOptions{Page: DefaultPageSettings()}

			result, err := converter.ToPDF(context.Background(), tt.html, opts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if string(result) != string(tt.mock.Result) {
				t.Errorf("ToPDF() = %q, want %q", result, tt.mock.Result)
			}
			if tt.mock.FileContent != tt.html {
				t.Errorf("renderer read %q, want %q", tt.mock.FileContent, tt.html)
			}
			if tt.mock.CalledOpts != opts {
				t.Error("options were not passed through to the renderer")
			}
			if _, err := os.Stat(tt.mock.CalledWith); !os.IsNotExist(err) {
				t.Errorf("temp file %s should be removed after rendering", tt.mock.CalledWith)
			}
		})
	}
}

func TestRodConverter_Close(t *testing.T) {
	t.Parallel()

	mock := &mockRenderer{}
	converter := &rodConverter{renderer: mock}
	if err := converter.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !mock.Closed {
		t.Error("Close() should close the renderer")
	}

	if err := (&rodConverter{}).Close(); err != nil {
		t.Errorf("Close() without renderer error = %v", err)
	}
}

func TestRodRenderer_CloseWithoutBrowser(t *testing.T) {
	t.Parallel()

	r := newRodRenderer(defaultTimeout)
	if err := r.Close(); err != nil {
		t.Errorf("Close() before launch error = %v", err)
	}
}

func TestRodRenderer_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newRodRenderer(defaultTimeout)
	if _, err := r.RenderFromFile(ctx, "/nonexistent.html", nil); !errors.Is(err, context.Canceled) {
		t.Errorf("RenderFromFile() error = %v, want context.Canceled", err)
	}
}

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       *pdfOptions
		wantWidth  float64
		wantHeight float64
		wantMargin float64
	}{
		{"nil options use letter", nil, 8.5, 11, DefaultMargin},
		{"nil page uses letter", &pdfOptions{}, 8.5, 11, DefaultMargin},
		{
			name:       "a4 portrait",
			opts:       &pdfOptions{Page: &PageSettings{Size: PageSizeA4, Orientation: OrientationPortrait, Margin: 1}},
			wantWidth:  8.27,
			wantHeight: 11.69,
			wantMargin: 1,
		},
		{
			name:       "legal landscape swaps dimensions",
			opts:       &pdfOptions{Page: &PageSettings{Size: "Legal", Orientation: "LANDSCAPE", Margin: 0.75}},
			wantWidth:  14,
			wantHeight: 8.5,
			wantMargin: 0.75,
		},
		{
			name:       "zero margin uses default",
			opts:       &pdfOptions{Page: &PageSettings{Size: PageSizeLetter}},
			wantWidth:  8.5,
			wantHeight: 11,
			wantMargin: DefaultMargin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := buildPDFOptions(tt.opts)

			if *got.PaperWidth != tt.wantWidth || *got.PaperHeight != tt.wantHeight {
				t.Errorf("paper = %vx%v, want %vx%v", *got.PaperWidth, *got.PaperHeight, tt.wantWidth, tt.wantHeight)
			}
			for name, m := range map[string]*float64{
				"top":    got.MarginTop,
				"bottom": got.MarginBottom,
				"left":   got.MarginLeft,
				"right":  got.MarginRight,
			} {
				if *m != tt.wantMargin {
					t.Errorf("margin %s = %v, want %v", name, *m, tt.wantMargin)
				}
			}
			if !got.PrintBackground {
				t.Error("PrintBackground should be enabled")
			}
		})
	}
}
