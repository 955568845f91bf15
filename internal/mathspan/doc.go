// Package mathspan locates LaTeX math delimited by $...$ and $$...$$ in
// HTML-bearing text and rewrites each span into a <span> element the
// client-side KaTeX renderer picks up by class name.
//
// Processing is a single pass over the content: the content is split into
// tag and text segments, text inside verbatim elements (pre, code, style,
// script) is passed through untouched, and every other text segment runs
// through the matcher. The concatenation of the output segments preserves
// every byte of the input outside matched math spans.
package mathspan
