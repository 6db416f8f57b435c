package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// maxStdinSize bounds Markdown read from standard input.
const maxStdinSize = 64 << 20

// Sentinel errors for the convert command.
var (
	ErrInvalidTimeout  = errors.New("invalid timeout")
	ErrTooManyInputs   = errors.New("too many input arguments")
	ErrReadStdin       = errors.New("failed to read standard input")
	ErrNoMarkdownFiles = errors.New("no markdown files found")
)

// runConvert resolves configuration, then converts standard input or every
// discovered Markdown file.
func runConvert(ctx context.Context, positional []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one file or directory, got %d", ErrTooManyInputs, len(positional))
	}

	envCfg := loadEnvConfig()
	cfg, err := resolveConfig(flags, envCfg)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg.Timeout, cfg)
	if err != nil {
		return err
	}

	opts, err := buildConverterOptions(cfg, timeout, env)
	if err != nil {
		return err
	}

	params, err := buildConversionParams(flags, cfg, env)
	if err != nil {
		return err
	}

	if isStdinMode(positional, cfg, env) {
		return convertStdin(ctx, opts, params, flags, env)
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	poolSize := min(md2html.ResolvePoolSize(workers), len(files))
	pool := newPoolAdapter(md2html.NewConverterPool(poolSize, opts...))
	defer func() { _ = pool.Close() }()

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", pool.Size())
	}

	results := convertBatch(ctx, pool, files, params)
	if failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return fmt.Errorf("%d of %d conversions failed: %w", failed, len(results), firstError(results))
	}
	return nil
}

// resolveConfig layers the config file, environment and flags, then
// validates the result.
func resolveConfig(flags *convertFlags, envCfg *envConfig) (*config.Config, error) {
	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfig loads the config named by the flag, falling back to the
// environment. Without either, defaults apply.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// mergeFlags applies explicitly set CLI flags over config values.
func mergeFlags(f *convertFlags, cfg *config.Config) {
	// Render
	if f.render.engine != "" {
		cfg.Render.Engine = f.render.engine
	}
	if f.render.maxQuoteDepth != 0 {
		cfg.Render.MaxQuoteDepth = f.render.maxQuoteDepth
	}
	if f.render.noNormalize {
		cfg.Render.Normalize = false
	}

	// Styling
	if f.style.style != "" {
		cfg.CSS.Style = f.style.style
	}
	if f.style.noStyle {
		cfg.CSS.NoStyle = true
	}
	if f.style.inline {
		cfg.CSS.Inline = true
	}

	// Document
	if f.document.standalone {
		cfg.Document.Standalone = true
	}
	if f.document.title != "" {
		cfg.Document.Title = f.document.title
	}
	if f.document.lang != "" {
		cfg.Document.Lang = f.document.lang
	}
	if f.document.date != "" {
		cfg.Document.Date = f.document.date
	}
	if f.assets.template != "" {
		cfg.Document.Template = f.assets.template
	}
	if f.assets.assetPath != "" {
		cfg.Assets.BasePath = f.assets.assetPath
	}

	// PDF
	if f.pdf.enabled {
		cfg.PDF.Enabled = true
	}
	if f.pdf.page.size != "" {
		cfg.PDF.Page.Size = f.pdf.page.size
	}
	if f.pdf.page.orientation != "" {
		cfg.PDF.Page.Orientation = f.pdf.page.orientation
	}
	if f.pdf.page.margin != 0 {
		cfg.PDF.Page.Margin = f.pdf.page.margin
	}
}

// resolveTimeout picks the conversion timeout.
// Priority: flag > env > config. Zero means the library default.
func resolveTimeout(flagValue string, envTimeout time.Duration, cfg *config.Config) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeout, flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTimeout, d)
		}
		return d, nil
	}
	if envTimeout > 0 {
		return envTimeout, nil
	}
	return cfg.TimeoutDuration()
}

// buildConverterOptions translates the resolved config into converter
// options.
func buildConverterOptions(cfg *config.Config, timeout time.Duration, env *Environment) ([]md2html.Option, error) {
	engine, err := md2html.ParseEngine(cfg.Render.Engine)
	if err != nil {
		return nil, err
	}

	opts := []md2html.Option{
		md2html.WithEngine(engine),
		md2html.WithMaxQuoteDepth(cfg.Render.MaxQuoteDepth),
		md2html.WithNormalization(cfg.Render.Normalize),
	}
	if timeout > 0 {
		opts = append(opts, md2html.WithTimeout(timeout))
	}
	if cfg.CSS.Style != "" {
		opts = append(opts, md2html.WithStyle(cfg.CSS.Style))
	}
	if cfg.CSS.NoStyle {
		opts = append(opts, md2html.WithoutBaseStyle())
	}
	if cfg.CSS.Inline {
		opts = append(opts, md2html.WithInlineStyles())
	}
	if cfg.Document.Template != "" {
		opts = append(opts, md2html.WithTemplate(cfg.Document.Template))
	}
	if cfg.Document.Lang != "" {
		opts = append(opts, md2html.WithLang(cfg.Document.Lang))
	}

	switch {
	case cfg.Assets.BasePath != "":
		opts = append(opts, md2html.WithAssetPath(cfg.Assets.BasePath))
	case env.AssetLoader != nil:
		opts = append(opts, md2html.WithAssetLoader(env.AssetLoader))
	}

	return opts, nil
}

// resolveInputPath returns the positional input, or the configured default
// input directory.
func resolveInputPath(positional []string, cfg *config.Config) (string, error) {
	if len(positional) > 0 {
		return positional[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// isStdinMode reports whether Markdown should be read from standard input:
// either "-" was given, or nothing was given and stdin is piped.
func isStdinMode(positional []string, cfg *config.Config, env *Environment) bool {
	if len(positional) == 1 {
		return positional[0] == "-"
	}
	return len(positional) == 0 && cfg.Input.DefaultDir == "" && !env.StdinIsTerminal()
}

// convertStdin converts standard input. Output goes to stdout unless
// --output names a file; with --pdf, stdout receives the PDF.
func convertStdin(ctx context.Context, opts []md2html.Option, params *conversionParams, flags *convertFlags, env *Environment) error {
	data, err := io.ReadAll(io.LimitReader(env.Stdin, maxStdinSize+1))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadStdin, err)
	}
	if len(data) > maxStdinSize {
		return fmt.Errorf("%w: input exceeds %d bytes", ErrReadStdin, maxStdinSize)
	}

	conv, err := md2html.NewConverter(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = conv.Close() }()

	res, err := conv.Convert(ctx, params.input(string(data), ""))
	if err != nil {
		return err
	}

	if flags.output == "" {
		out := res.HTML
		if params.pdf {
			out = res.PDF
		}
		if _, err := env.Stdout.Write(out); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteHTML, err)
		}
		return nil
	}

	htmlPath := flags.output
	if !hasHTMLExtension(htmlPath) {
		htmlPath = filepath.Join(htmlPath, "stdin.html")
	}
	if err := os.MkdirAll(filepath.Dir(htmlPath), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputDir, err)
	}
	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(htmlPath, res.HTML, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}

	result := ConversionResult{InputPath: "-", OutputPath: htmlPath}
	if params.pdf {
		result.PDFPath = pdfOutputPath(htmlPath)
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(result.PDFPath, res.PDF, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWritePDF, err)
		}
	}

	printResultsWithWriter([]ConversionResult{result}, flags.common.quiet, flags.common.verbose, env)
	return nil
}

// hasHTMLExtension reports whether path names an HTML file.
func hasHTMLExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
