package main

import (
	"fmt"

	md2html "github.com/alnah/go-md2html"
)

// poolAdapter exposes an md2html.ConverterPool through the Pool interface
// used by convertBatch.
type poolAdapter struct {
	pool *md2html.ConverterPool
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

func newPoolAdapter(pool *md2html.ConverterPool) *poolAdapter {
	return &poolAdapter{pool: pool}
}

// Acquire returns a converter, or nil when one cannot be created.
func (a *poolAdapter) Acquire() CLIConverter {
	conv, err := a.pool.Acquire()
	if err != nil {
		return nil
	}
	return conv
}

// Release returns a converter obtained from Acquire. Passing any other
// CLIConverter is a programming error.
func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*md2html.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

// Size returns the pool capacity.
func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

// Close releases every converter the pool created.
func (a *poolAdapter) Close() error {
	return a.pool.Close()
}
