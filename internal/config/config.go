// Package config loads and validates md2html configuration files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2html/internal/dateutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength        = 4096
	MaxTitleLength       = 200
	MaxLangLength        = 35 // BCP 47 tags
	MaxAssetNameLength   = 64
	MaxPageSizeLength    = 10
	MaxOrientationLength = 10
	MaxTimeoutLength     = 20
)

// Rendering bounds.
const (
	MaxQuoteDepthLimit = 256
	MinMargin          = 0.25
	MaxMargin          = 3.0
)

// Engine names accepted in render.engine.
const (
	EngineLite = "lite"
	EngineGFM  = "gfm"
)

// AppName names the per-user config directory.
const AppName = "go-md2html"

// Config holds all configuration for a conversion run.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Render   RenderConfig   `yaml:"render"`
	CSS      CSSConfig      `yaml:"css"`
	Document DocumentConfig `yaml:"document"`
	Assets   AssetsConfig   `yaml:"assets"`
	PDF      PDFConfig      `yaml:"pdf"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// RenderConfig selects and tunes the Markdown engine.
type RenderConfig struct {
	Engine        string `yaml:"engine"`        // "lite" (default) or "gfm"
	MaxQuoteDepth int    `yaml:"maxQuoteDepth"` // 0 = renderer default
	Normalize     bool   `yaml:"normalize"`     // Unicode NFC before rendering
	Timeout       string `yaml:"timeout"`       // Go duration, e.g. "30s"
}

// CSSConfig defines styling options added on top of the built-in stylesheet.
type CSSConfig struct {
	Style   string `yaml:"style"`   // Embedded style name, file path, or CSS text
	NoStyle bool   `yaml:"noStyle"` // Drop the built-in stylesheet
	Inline  bool   `yaml:"inline"`  // Move rules into style attributes
}

// DocumentConfig controls standalone document output.
type DocumentConfig struct {
	Standalone bool   `yaml:"standalone"`
	Title      string `yaml:"title"` // Empty = first h1, then file name
	Lang       string `yaml:"lang"`
	Date       string `yaml:"date"`     // Literal text, "auto" or "auto:LAYOUT"; empty = no date
	Template   string `yaml:"template"` // Template name (default "document")
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// PDFConfig enables PDF export through headless Chrome.
type PDFConfig struct {
	Enabled bool       `yaml:"enabled"`
	Page    PageConfig `yaml:"page"`
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches, 0 = default
}

// Validate checks enumerations, ranges and field lengths. Called by
// LoadConfig, and available for callers who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"render.timeout", c.Render.Timeout, MaxTimeoutLength},
		{"css.style", c.CSS.Style, MaxPathLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.lang", c.Document.Lang, MaxLangLength},
		{"document.date", c.Document.Date, MaxTitleLength},
		{"document.template", c.Document.Template, MaxAssetNameLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"pdf.page.size", c.PDF.Page.Size, MaxPageSizeLength},
		{"pdf.page.orientation", c.PDF.Page.Orientation, MaxOrientationLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Render.Engine) {
	case "", EngineLite, EngineGFM:
	default:
		return fmt.Errorf("%w: render.engine %q (must be %s or %s)", ErrInvalidValue, c.Render.Engine, EngineLite, EngineGFM)
	}

	if c.Render.MaxQuoteDepth < 0 || c.Render.MaxQuoteDepth > MaxQuoteDepthLimit {
		return fmt.Errorf("%w: render.maxQuoteDepth must be between 0 and %d, got %d", ErrInvalidValue, MaxQuoteDepthLimit, c.Render.MaxQuoteDepth)
	}

	if _, err := dateutil.Resolve(c.Document.Date, time.Time{}); err != nil {
		return fmt.Errorf("%w: document.date: %v", ErrInvalidValue, err)
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	if c.PDF.Page.Margin != 0 && (c.PDF.Page.Margin < MinMargin || c.PDF.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: pdf.page.margin must be between %.2f and %.2f, got %.2f", ErrInvalidValue, MinMargin, MaxMargin, c.PDF.Page.Margin)
	}

	return nil
}

// TimeoutDuration parses render.timeout. An empty value returns zero,
// meaning the library default.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Render.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Render.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: render.timeout %q: %v", ErrInvalidValue, c.Render.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: render.timeout must be positive, got %s", ErrInvalidValue, d)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Engine:    EngineLite,
			Normalize: true,
		},
		Document: DocumentConfig{
			Lang: "en",
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values missing from the file keep their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg := DefaultConfig()
	if err := yamlutil.ReadStrict(f, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for name.yaml then name.yml, first in the
// current directory, then in the user config directory.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppName, name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
