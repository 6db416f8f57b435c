package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-md2html/internal/config"
)

// envPrefix namespaces the environment variables the CLI reads.
const envPrefix = "MD2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string        // MD2HTML_CONFIG: config file path
	Style      string        // MD2HTML_STYLE: CSS style name or path
	Timeout    time.Duration // MD2HTML_TIMEOUT: conversion timeout
	Engine     string        // MD2HTML_ENGINE: lite or gfm

	// Tier 2 - I/O
	InputDir  string // MD2HTML_INPUT_DIR: default input directory
	OutputDir string // MD2HTML_OUTPUT_DIR: default output directory
	Workers   int    // MD2HTML_WORKERS: parallel workers

	// Tier 3 - Extended
	Lang      string // MD2HTML_LANG: document language
	PageSize  string // MD2HTML_PAGE_SIZE: a4, letter, legal
	AssetPath string // MD2HTML_ASSET_PATH: custom asset directory
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"MD2HTML_CONFIG":  true,
	"MD2HTML_STYLE":   true,
	"MD2HTML_TIMEOUT": true,
	"MD2HTML_ENGINE":  true,
	// Tier 2 - I/O
	"MD2HTML_INPUT_DIR":  true,
	"MD2HTML_OUTPUT_DIR": true,
	"MD2HTML_WORKERS":    true,
	// Tier 3 - Extended
	"MD2HTML_LANG":       true,
	"MD2HTML_PAGE_SIZE":  true,
	"MD2HTML_ASSET_PATH": true,
	// Diagnostics
	"MD2HTML_CONTAINER": true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed durations and worker counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2HTML_CONFIG"),
		Style:      os.Getenv("MD2HTML_STYLE"),
		Engine:     os.Getenv("MD2HTML_ENGINE"),
		InputDir:   os.Getenv("MD2HTML_INPUT_DIR"),
		OutputDir:  os.Getenv("MD2HTML_OUTPUT_DIR"),
		Lang:       os.Getenv("MD2HTML_LANG"),
		PageSize:   os.Getenv("MD2HTML_PAGE_SIZE"),
		AssetPath:  os.Getenv("MD2HTML_ASSET_PATH"),
	}

	if timeout := os.Getenv("MD2HTML_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
// Helps catch typos like MD2HTML_STYEL instead of MD2HTML_STYLE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags, timeout via resolveTimeout).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.CSS.Style == "" {
		cfg.CSS.Style = env.Style
	}
	// The default config already names the lite engine, so the env var only
	// yields to an explicit non-default choice.
	if env.Engine != "" && (cfg.Render.Engine == "" || cfg.Render.Engine == config.EngineLite) {
		cfg.Render.Engine = env.Engine
	}

	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}

	if env.Lang != "" && (cfg.Document.Lang == "" || cfg.Document.Lang == "en") {
		cfg.Document.Lang = env.Lang
	}
	if env.PageSize != "" && cfg.PDF.Page.Size == "" {
		cfg.PDF.Page.Size = env.PageSize
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
}
