package katexify

import (
	"context"
	"fmt"

	"github.com/alnah/go-katexify/internal/mathspan"
	"github.com/alnah/go-katexify/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.AssetInjector = (*pipeline.KatexAssetInjection)(nil)
)

// defaultFilter backs the package-level Transform. The filter is stateless
// across calls and safe for concurrent use.
var defaultFilter = mathspan.NewFilter(mathspan.DefaultMatchTimeout)

// Transform rewrites math spans in one HTML-bearing string using default
// settings. It always returns a string, possibly identical to the input:
// no-match, validation rejection, and matcher failures are not errors.
func Transform(content string) string {
	out, _ := defaultFilter.Transform(content)
	return out
}

// Converter orchestrates the content transformation pipeline.
// Create with NewConverter, then call Convert once per content string.
// A Converter is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	htmlConverter pipeline.HTMLConverter
	assetInjector pipeline.AssetInjector
	filter        *mathspan.Filter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithMatchTimeout).
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           converterConfig{matchTimeout: mathspan.DefaultMatchTimeout},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		assetInjector: &pipeline.KatexAssetInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.filter = mathspan.NewFilter(c.cfg.matchTimeout)

	return c, nil
}

// Convert runs the pipeline over one content string.
// The context is used for cancellation of the Markdown stage; the math
// filter itself is a bounded, pure transformation with no suspension points.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	htmlContent := input.Content
	if input.Format == FormatMarkdown {
		htmlContent, err = c.htmlConverter.ToHTML(ctx, htmlContent)
		if err != nil {
			return nil, fmt.Errorf("converting to HTML: %w", err)
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	filtered, spans := c.filter.Transform(htmlContent)

	if input.Assets != nil {
		filtered = c.assetInjector.InjectAssets(ctx, filtered, &pipeline.AssetTags{
			BaseURL: input.Assets.BaseURL,
			Defer:   input.Assets.Defer,
		})
	}

	return &Result{HTML: filtered, Spans: spans}, nil
}

// validateInput checks that required fields are present and valid.
func (c *Converter) validateInput(input Input) error {
	if input.Content == "" {
		return ErrEmptyContent
	}
	switch input.Format {
	case "", FormatHTML, FormatMarkdown:
	default:
		return fmt.Errorf("%w: %q (must be html or markdown)", ErrInvalidFormat, input.Format)
	}
	return input.Assets.Validate()
}
