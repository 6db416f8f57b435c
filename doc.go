// Package md2html converts Markdown documents to styled HTML.
//
// # Quick Start
//
// For a one-off fragment, call Transform:
//
//	out := md2html.Transform("# Hello\n\nWorld")
//
// The output starts with the built-in stylesheet followed by one HTML element
// per Markdown block. Transform never fails.
//
// For more control, create a converter, convert Markdown, and close when done:
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown:   "# Hello\n\nWorld",
//	    Standalone: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", result.HTML, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (BOM removal, line ending and NFC normalization)
//  2. Markdown to HTML, with the built-in renderer (EngineLite) or goldmark (EngineGFM)
//  3. Relative path rewriting when Input.SourceDir is set
//  4. Stylesheets: built-in first, then the converter style, then Input.CSS
//  5. Optional document wrapping (title, lang, date) and style inlining
//  6. Optional PDF rendering via headless Chrome (go-rod)
//
// # Built-in Renderer
//
// EngineLite handles ATX headings, horizontal rules, fenced code, nested
// ordered and unordered lists, pipe tables with alignment, nested blockquotes
// and inline code, images, links, bold, italic and strikethrough. Text is
// HTML-escaped inside code; inline raw HTML passes through. Blockquote
// nesting is bounded by WithMaxQuoteDepth.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithEngine(md2html.EngineGFM),
//	    md2html.WithStyle("dark"),
//	    md2html.WithTimeout(10 * time.Second),
//	)
//
// # Parallel Processing
//
// For batch conversion with PDF output, use ConverterPool to manage multiple
// browser instances:
//
//	pool := md2html.NewConverterPool(4)
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
//	result, err := conv.Convert(ctx, input)
//
// # Custom Assets
//
// Override built-in styles and templates using AssetLoader:
//
//	loader, err := md2html.NewAssetLoader("/path/to/assets")
//	conv, err := md2html.NewConverter(md2html.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── document.html
package md2html
