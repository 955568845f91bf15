package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the katexify command.
type cliFlags struct {
	output       string
	config       string
	format       string
	assets       bool
	baseURL      string
	deferScripts bool
	matchTimeout string
	quiet        bool
	verbose      bool
	showVersion  bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("katexify", flag.ContinueOnError)
	f := &cliFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.format, "format", "f", "", "input format: html, markdown (default: by extension)")

	// Asset injection flags
	fs.BoolVar(&f.assets, "assets", false, "inject KaTeX asset tags into the output")
	fs.StringVar(&f.baseURL, "base-url", "", "base URL of the KaTeX distribution")
	fs.BoolVar(&f.deferScripts, "defer", false, "load injected scripts with defer")

	// Filter flags
	fs.StringVarP(&f.matchTimeout, "match-timeout", "t", "", "matcher timeout per segment (e.g. 250ms)")

	// Common flags
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file details")
	fs.BoolVar(&f.showVersion, "version", false, "show version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
