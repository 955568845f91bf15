package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: katexify [flags] [input...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite $...$ and $$...$$ math in HTML or Markdown content into")
	fmt.Fprintln(w, "KaTeX-renderable span markup.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Files to transform; \"-\" or none reads stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output file or directory (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -f, --format <s>            Input format: html, markdown (default: by extension)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --assets                Inject KaTeX asset tags into the output")
	fmt.Fprintln(w, "      --base-url <url>        Base URL of the KaTeX distribution")
	fmt.Fprintln(w, "      --defer                 Load injected scripts with defer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Filter:")
	fmt.Fprintln(w, "  -t, --match-timeout <d>     Matcher timeout per segment (e.g. 250ms)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show per-file details")
	fmt.Fprintln(w, "      --version               Show version and exit")
}
