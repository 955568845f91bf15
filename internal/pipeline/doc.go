// Package pipeline implements the conversion stages around the math filter.
//
// Two stages live here:
//   - Markdown to HTML conversion via Goldmark, for content that has not
//     been rendered yet when the math filter runs
//   - KaTeX asset tag injection, which adds the <link> and <script> tags a
//     client-side renderer needs to pick up the emitted math spans
//
// The math span rewriting itself is handled by internal/mathspan. This
// separation keeps the pipeline focused on document plumbing while mathspan
// owns the delimiter scanning and substitution rules.
package pipeline
