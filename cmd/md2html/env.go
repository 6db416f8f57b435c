package main

import (
	"io"
	"os"
	"time"

	md2html "github.com/alnah/go-md2html"
	"golang.org/x/term"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, and asset loading.
type Environment struct {
	Now             func() time.Time
	Stdout          io.Writer
	Stderr          io.Writer
	Stdin           io.Reader
	StdinIsTerminal func() bool
	AssetLoader     md2html.AssetLoader // nil = library default, overridden by --asset-path
}

// DefaultEnv returns the production environment bound to the process
// streams.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		StdinIsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) // #nosec G115 -- file descriptors fit in int
		},
	}
}
