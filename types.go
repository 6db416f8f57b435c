package md2html

import (
	"fmt"
	"strings"
	"time"
)

// Engine selects the Markdown renderer.
type Engine string

// Available engines.
const (
	// EngineLite is the built-in renderer: headings, lists, tables, fenced
	// code, blockquotes and inline formatting, with no raw HTML filtering.
	EngineLite Engine = "lite"

	// EngineGFM renders GitHub Flavored Markdown through goldmark with
	// footnotes, heading IDs and syntax highlighting.
	EngineGFM Engine = "gfm"
)

// ParseEngine maps a case-insensitive name to an Engine. An empty name
// selects EngineLite.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case "", EngineLite:
		return EngineLite, nil
	case EngineGFM:
		return EngineGFM, nil
	}
	return "", fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidEngine, name, EngineLite, EngineGFM)
}

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	_, ok := paperSizes[strings.ToLower(size)]
	return ok
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Input contains conversion parameters.
type Input struct {
	Markdown      string        // Markdown content (required)
	CSS           string        // Extra CSS appended after the built-in stylesheet (optional)
	SourceDir     string        // Directory relative image and link paths resolve against (optional)
	Standalone    bool          // Wrap the fragment in a complete HTML5 document
	Title         string        // Document title; empty = first level-one heading
	FallbackTitle string        // Title used when there is neither Title nor a level-one heading
	Date          string        // Document date for the date meta tag (optional)
	PDF           bool          // Also render a PDF through headless Chrome
	Page          *PageSettings // PDF page settings (optional, nil = defaults)
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML []byte // Rendered HTML, a fragment or a full document
	PDF  []byte // PDF bytes; nil unless Input.PDF was set
}

// defaultTimeout bounds a single conversion when no timeout is specified.
const defaultTimeout = 30 * time.Second
