// Package markup converts a restricted dialect of Markdown into styled HTML
// without relying on an external parser.
//
// The input is walked line by line. Each line decides the kind of the block
// that starts on it (heading, fenced code, blockquote, list, thematic break,
// table, paragraph or blank) and the matching renderer consumes the whole
// block. Blockquotes re-enter the dispatcher on their dedented body, lists
// track nesting on an explicit stack of frames, and every piece of user
// text passes through a fixed cascade of inline rewrites.
//
// Output never contains newlines except inside fenced code blocks.
package markup
