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

	katexify "github.com/alnah/go-katexify"
	"github.com/alnah/go-katexify/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no input specified")
	ErrReadInput      = errors.New("failed to read input file")
	ErrWriteOutput    = errors.New("failed to write output file")
	ErrOutputNotDir   = errors.New("multiple inputs require an output directory")
	ErrInvalidTimeout = errors.New("invalid match timeout")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// runParams groups the settings merged from flags and config.
type runParams struct {
	format  string
	assets  *katexify.AssetSettings
	timeout time.Duration
}

// run orchestrates one CLI invocation.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags, inputs, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.showVersion {
		fmt.Fprintln(stdout, "katexify "+Version)
		return nil
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
	}

	params, err := mergeParams(flags, cfg)
	if err != nil {
		return err
	}

	var opts []katexify.Option
	if params.timeout > 0 {
		opts = append(opts, katexify.WithMatchTimeout(params.timeout))
	}
	conv, err := katexify.NewConverter(opts...)
	if err != nil {
		return err
	}

	if len(inputs) == 0 || (len(inputs) == 1 && inputs[0] == "-") {
		return convertStream(conv, params, stdin, stdout)
	}
	return convertFiles(conv, params, inputs, flags, cfg, stdout, stderr)
}

// mergeParams resolves effective settings: flags win over config values.
func mergeParams(flags *cliFlags, cfg *config.Config) (*runParams, error) {
	p := &runParams{format: flags.format}
	if p.format == "" {
		p.format = cfg.Input.DefaultFormat
	}

	if flags.assets || cfg.Assets.Enabled {
		baseURL := flags.baseURL
		if baseURL == "" {
			baseURL = cfg.Assets.BaseURL
		}
		p.assets = &katexify.AssetSettings{
			BaseURL: baseURL,
			Defer:   flags.deferScripts || cfg.Assets.Defer,
		}
	}

	timeout := flags.matchTimeout
	if timeout == "" {
		timeout = cfg.Filter.MatchTimeout
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, timeout)
		}
		p.timeout = d
	}

	return p, nil
}

// convertStream filters stdin to stdout.
func convertStream(conv *katexify.Converter, params *runParams, stdin io.Reader, stdout io.Writer) error {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
	}
	if len(data) == 0 {
		return ErrNoInput
	}

	result, err := conv.Convert(context.Background(), katexify.Input{
		Content: string(data),
		Format:  params.format,
		Assets:  params.assets,
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(stdout, result.HTML)
	return err
}

// convertFiles processes one or more input files.
// A single input with no --output writes to stdout; otherwise results land
// in the output file or directory.
func convertFiles(conv *katexify.Converter, params *runParams, inputs []string, flags *cliFlags, cfg *config.Config, stdout, stderr io.Writer) error {
	outDir := flags.output
	if outDir == "" {
		outDir = cfg.Output.DefaultDir
	}

	if len(inputs) > 1 {
		if outDir == "" {
			return ErrOutputNotDir
		}
		if err := os.MkdirAll(outDir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteOutput, outDir, err)
		}
	}

	for _, input := range inputs {
		start := time.Now()
		result, err := convertFile(conv, params, input)
		if err != nil {
			return err
		}

		dest, err := writeResult(result.HTML, input, outDir, len(inputs) > 1, stdout)
		if err != nil {
			return err
		}

		if flags.verbose && !flags.quiet {
			fmt.Fprintf(stderr, "%s: %d span(s) in %v -> %s\n", input, result.Spans, time.Since(start).Round(time.Millisecond), dest)
		}
	}
	return nil
}

// convertFile reads and converts a single input file.
func convertFile(conv *katexify.Converter, params *runParams, path string) (*katexify.Result, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadInput, path, err)
	}

	format := params.format
	if format == "" {
		format = formatForExtension(path)
	}

	return conv.Convert(context.Background(), katexify.Input{
		Content: string(data),
		Format:  format,
		Assets:  params.assets,
	})
}

// writeResult sends output to stdout, a file, or a directory entry.
// Returns a human-readable destination label for verbose reporting.
func writeResult(html, input, outDir string, multi bool, stdout io.Writer) (string, error) {
	if outDir == "" {
		if _, err := io.WriteString(stdout, html); err != nil {
			return "", err
		}
		return "stdout", nil
	}

	dest := outDir
	if multi || isDir(outDir) {
		dest = filepath.Join(outDir, outputName(input))
	}
	if err := os.WriteFile(dest, []byte(html), filePermissions); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWriteOutput, dest, err)
	}
	return dest, nil
}

// formatForExtension maps a file extension to an input format.
func formatForExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return katexify.FormatMarkdown
	default:
		return katexify.FormatHTML
	}
}

// outputName derives the output filename for one input.
func outputName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}

// isDir reports whether path exists and is a directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
