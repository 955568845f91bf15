// Package katexify finds LaTeX math expressions embedded in HTML or
// Markdown-rendered content and rewrites them into normalized span markup a
// client-side KaTeX renderer can pick up by class name.
//
// # Quick Start
//
// For plain HTML content, the package-level Transform is all you need:
//
//	out := katexify.Transform(`Euler: $e^{i\pi}+1=0$`)
//	// out: Euler: <span class="katex math inline">e^{i\pi}+1=0</span>
//
// Transform never fails: content without math, math rejected by validation,
// and internal matcher failures all degrade to the unmodified input text.
//
// # Delimiters and Rules
//
// Inline math uses $...$, display math uses $$...$$. Display delimiters take
// precedence, so $$x$$ is one display span, never two inline spans. A span
// whose content starts or ends with whitespace is left alone: "$5 - $10"
// stays a currency range. Math inside <pre>, <code>, <style> and <script>
// elements is never rewritten. Space-padded HTML entity encodings of LaTeX
// control characters ( &lt; , &gt; , &amp; and friends) are decoded inside
// accepted spans only.
//
// # Conversion Pipeline
//
// Use a Converter when content needs surrounding stages:
//
//	conv, err := katexify.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, katexify.Input{
//	    Content: "# Notes\n\nInline $a_i$ math.",
//	    Format:  katexify.FormatMarkdown,
//	    Assets:  &katexify.AssetSettings{BaseURL: "https://cdn.example.com/katex", Defer: true},
//	})
//
// The stages run in order:
//
//  1. Markdown to HTML conversion via Goldmark (only for FormatMarkdown)
//  2. Math span extraction and rewriting
//  3. KaTeX asset tag injection (only when Assets is set)
//
// Rendering itself happens later, client-side; this package only produces
// markup the renderer consumes.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := katexify.NewConverter(
//	    katexify.WithMatchTimeout(500 * time.Millisecond),
//	)
package katexify
