package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	md2html "github.com/alnah/go-md2html"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment, files and fake converters
// ---------------------------------------------------------------------------

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an environment with an interactive, empty stdin.
func newTestEnv() *testEnv {
	var stdout, stderr bytes.Buffer
	return &testEnv{
		Environment: &Environment{
			Now:             time.Now,
			Stdout:          &stdout,
			Stderr:          &stderr,
			Stdin:           strings.NewReader(""),
			StdinIsTerminal: func() bool { return true },
		},
		stdout: &stdout,
		stderr: &stderr,
	}
}

// withStdin switches the environment to piped input.
func (e *testEnv) withStdin(content string) *testEnv {
	e.Stdin = strings.NewReader(content)
	e.StdinIsTerminal = func() bool { return false }
	return e
}

// writeFile creates path under root with content, making parent directories.
func writeFile(t *testing.T, root, name, content string) string {
	t.Helper()

	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// fakeConverter records inputs and returns canned output.
type fakeConverter struct {
	mu     sync.Mutex
	inputs []md2html.Input
	err    error
}

func (f *fakeConverter) Convert(_ context.Context, input md2html.Input) (*md2html.ConvertResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	res := &md2html.ConvertResult{HTML: []byte("<p>" + input.Markdown + "</p>")}
	if input.PDF {
		res.PDF = []byte("%PDF-1.4 fake")
	}
	return res, nil
}

// fakePool hands out a single fakeConverter, or nil to simulate a creation
// failure.
type fakePool struct {
	conv     *fakeConverter
	size     int
	failInit bool

	mu       sync.Mutex
	released int
}

func (p *fakePool) Acquire() CLIConverter {
	if p.failInit {
		return nil
	}
	return p.conv
}

func (p *fakePool) Release(CLIConverter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.released++
}

func (p *fakePool) Size() int { return p.size }

// testParams returns conversion params with a fixed clock.
func testParams() *conversionParams {
	return &conversionParams{now: time.Now}
}
