package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{"html", "html", nil},
		{"compound", "tar.gz", nil},
		{"empty", "", fileutil.ErrExtensionEmpty},
		{"slash", "../html", fileutil.ErrExtensionPathTraversal},
		{"backslash", `..\html`, fileutil.ErrExtensionPathTraversal},
		{"null byte", "ht\x00ml", fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteTempFile - Temporary file lifecycle
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	path, cleanup, err := fileutil.WriteTempFile("<p>hello</p>", "html")
	if err != nil {
		t.Fatalf("WriteTempFile: %v", err)
	}

	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path %q should end in .html", path)
	}
	if !strings.HasPrefix(filepath.Base(path), "md2html-") {
		t.Errorf("path %q should carry the md2html- prefix", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(data) != "<p>hello</p>" {
		t.Errorf("content = %q", data)
	}

	cleanup()
	if fileutil.FileExists(path) {
		t.Error("cleanup should remove the file")
	}
}

func TestWriteTempFile_InvalidExtension(t *testing.T) {
	t.Parallel()

	_, cleanup, err := fileutil.WriteTempFile("x", "")
	if !errors.Is(err, fileutil.ErrExtensionEmpty) {
		t.Errorf("error = %v, want ErrExtensionEmpty", err)
	}
	if cleanup != nil {
		t.Error("cleanup should be nil on error")
	}
}

// ---------------------------------------------------------------------------
// Path classification
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.md")
	if err := os.WriteFile(file, []byte("# a"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing.md")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"dark", false},
		{"my-style", false},
		{"./brand.css", true},
		{"/abs/brand.css", true},
		{`C:\styles\brand.css`, true},
	}
	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.in); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsCSSText(t *testing.T) {
	t.Parallel()

	if !fileutil.IsCSSText("body { margin: 0 }") {
		t.Error("declaration block should be CSS text")
	}
	if fileutil.IsCSSText("dark") {
		t.Error("style name should not be CSS text")
	}
}

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"notes.md", true},
		{"NOTES.MD", true},
		{"guide.markdown", true},
		{"page.html", false},
		{"README", false},
		{"dir.md/file.txt", false},
	}
	for _, tt := range tests {
		if got := fileutil.IsMarkdown(tt.path); got != tt.want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestReplaceExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, ext, want string
	}{
		{"notes.md", ".html", "notes.html"},
		{"dir/guide.markdown", ".pdf", "dir/guide.pdf"},
		{"README", ".html", "README.html"},
		{"archive.tar.md", ".html", "archive.tar.html"},
	}
	for _, tt := range tests {
		if got := fileutil.ReplaceExtension(tt.path, tt.ext); got != tt.want {
			t.Errorf("ReplaceExtension(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}
