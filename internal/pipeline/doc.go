// Package pipeline implements the stages around Markdown-to-HTML conversion.
//
// The stages are:
//   - Markdown preprocessing (line endings, byte order mark, Unicode NFC)
//   - Markdown to HTML conversion, either with the built-in markup renderer
//     or with Goldmark for full GitHub Flavored Markdown
//   - standalone document wrapping and title extraction
//   - extra stylesheet validation, injection and inlining
//   - relative path rewriting for documents rendered from a temporary file
//
// PDF export is handled separately by the root md2html package using
// headless Chrome (go-rod).
package pipeline
