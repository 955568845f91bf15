package katexify

import (
	"fmt"
	"strings"
	"time"
)

// Input format constants.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// MaxBaseURLLength caps asset base URLs at the common browser limit.
const MaxBaseURLLength = 2048

// Input contains conversion parameters.
type Input struct {
	Content string         // HTML or Markdown content (required)
	Format  string         // "html", "markdown" (empty = "html")
	Assets  *AssetSettings // KaTeX asset tag injection (optional, nil = none)
}

// AssetSettings configures the client-side renderer assets injected into the
// output. BaseURL points at a KaTeX distribution (CDN or self-hosted); Defer
// selects deferred script loading over the legacy synchronous tags.
type AssetSettings struct {
	BaseURL string
	Defer   bool
}

// Validate checks that asset settings are usable.
// Returns nil if a is nil (nil means no injection).
func (a *AssetSettings) Validate() error {
	if a == nil {
		return nil
	}
	if a.BaseURL == "" {
		return fmt.Errorf("%w: base URL is empty", ErrInvalidBaseURL)
	}
	if len(a.BaseURL) > MaxBaseURLLength {
		return fmt.Errorf("%w: %d characters (max %d)", ErrInvalidBaseURL, len(a.BaseURL), MaxBaseURLLength)
	}
	if !hasWebScheme(a.BaseURL) {
		return fmt.Errorf("%w: %q (must be http, https, or protocol-relative)", ErrInvalidBaseURL, a.BaseURL)
	}
	return nil
}

// hasWebScheme reports whether s can be fetched by a browser script loader.
func hasWebScheme(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "//")
}

// Result holds the outcome of one conversion.
type Result struct {
	HTML  string // transformed content
	Spans int    // number of math spans rewritten
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	matchTimeout time.Duration
}

// WithMatchTimeout caps the time the pattern engine may spend on a single
// text segment. Segments that exceed it are passed through unmodified.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithMatchTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("katexify: WithMatchTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.matchTimeout = d
	}
}
