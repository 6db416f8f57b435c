package md2html

import "time"

// MaxQuoteDepthLimit caps WithMaxQuoteDepth.
const MaxQuoteDepthLimit = 256

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	engine        Engine
	maxQuoteDepth int
	timeout       time.Duration
	normalize     bool
	omitBaseStyle bool
	inlineStyles  bool
	styleInput    string // name, path or CSS text, resolved in NewConverter
	resolvedStyle string
	template      string
	lang          string
	assetPath     string
}

// WithEngine selects the Markdown renderer. Default: EngineLite.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithMaxQuoteDepth bounds blockquote nesting for EngineLite. Deeper quotes
// are rendered as escaped text. Zero keeps the renderer default.
func WithMaxQuoteDepth(n int) Option {
	return func(c *Converter) {
		c.cfg.maxQuoteDepth = n
	}
}

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2html: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithNormalization toggles Unicode NFC normalization of the input.
// Enabled by default.
func WithNormalization(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.normalize = enabled
	}
}

// WithStyle adds a stylesheet after the built-in one. The value may be:
//   - a file path (contains / or \): the file is read
//   - CSS text (contains {): used as is
//   - a style name: loaded from the asset loader (e.g. "dark")
func WithStyle(nameOrPathOrCSS string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPathOrCSS
	}
}

// WithoutBaseStyle drops the built-in stylesheet from the output.
func WithoutBaseStyle() Option {
	return func(c *Converter) {
		c.cfg.omitBaseStyle = true
	}
}

// WithInlineStyles moves stylesheet rules into style attributes of the
// elements they match, for mail clients and other hosts that strip <style>.
// The result is always a full document.
func WithInlineStyles() Option {
	return func(c *Converter) {
		c.cfg.inlineStyles = true
	}
}

// WithTemplate selects the standalone document template by name.
// Default: "document".
func WithTemplate(name string) Option {
	return func(c *Converter) {
		c.cfg.template = name
	}
}

// WithLang sets the lang attribute of standalone documents. Default: "en".
func WithLang(lang string) Option {
	return func(c *Converter) {
		c.cfg.lang = lang
	}
}

// WithAssetPath loads styles and templates from dir before falling back to
// the embedded ones. The directory holds styles/{name}.css and
// templates/{name}.html.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithAssetLoader sets a custom asset loader. Takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.assetLoader = loader
	}
}

// withPDFConverter injects a PDF backend (tests).
func withPDFConverter(p pdfConverter) Option {
	return func(c *Converter) {
		c.pdfConverter = p
	}
}
