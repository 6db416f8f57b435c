package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"context canceled", context.Canceled, ExitGeneral},

		{"browser connect", fmt.Errorf("wrap: %w", md2html.ErrBrowserConnect), ExitBrowser},
		{"page load", md2html.ErrPageLoad, ExitBrowser},
		{"pdf generation", md2html.ErrPDFGeneration, ExitBrowser},

		{"not exist", fmt.Errorf("stat: %w", os.ErrNotExist), ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"read stdin", ErrReadStdin, ExitIO},
		{"write html", ErrWriteHTML, ExitIO},
		{"output dir", ErrOutputDir, ExitIO},
		{"no files", ErrNoMarkdownFiles, ExitIO},
		{"batch wraps first failure", fmt.Errorf("1 of 2 conversions failed: %w", ErrWritePDF), ExitIO},

		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config value", config.ErrInvalidValue, ExitUsage},
		{"empty markdown", md2html.ErrEmptyMarkdown, ExitUsage},
		{"engine", md2html.ErrInvalidEngine, ExitUsage},
		{"quote depth", md2html.ErrInvalidQuoteDepth, ExitUsage},
		{"css", md2html.ErrInvalidCSS, ExitUsage},
		{"template", md2html.ErrTemplateNotFound, ExitUsage},
		{"page size", md2html.ErrInvalidPageSize, ExitUsage},
		{"flag", ErrInvalidFlag, ExitUsage},
		{"timeout", ErrInvalidTimeout, ExitUsage},
		{"shell", ErrUnsupportedShell, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"timeout", fmt.Errorf("converting: %w", context.DeadlineExceeded), "--timeout"},
		{"config", config.ErrConfigNotFound, "--config"},
		{"output dir", ErrOutputDir, "writable"},
		{"style", md2html.ErrStyleNotFound, "available: "},
		{"css", md2html.ErrInvalidCSS, "braces"},
		{"engine", md2html.ErrInvalidEngine, "--engine gfm"},
		{"browser", md2html.ErrBrowserConnect, "drop --pdf"},
		{"none", errors.New("other"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want substring %q", got, tt.want)
			}
		})
	}
}
