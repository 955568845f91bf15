package pipeline

import (
	"context"
	"html"
	"strings"
)

// AssetTags describes the client-side renderer assets to inject.
type AssetTags struct {
	BaseURL string // base URL serving the KaTeX distribution
	Defer   bool   // deferred script loading vs. the legacy synchronous tags
}

// AssetInjector defines the contract for injecting renderer asset tags.
type AssetInjector interface {
	InjectAssets(ctx context.Context, htmlContent string, tags *AssetTags) string
}

// KatexAssetInjection inserts the stylesheet and script tags pointing at a
// KaTeX distribution so a client-side script can render the emitted spans.
type KatexAssetInjection struct{}

// InjectAssets inserts the asset block into HTML content.
// Tries </head> first, then after <body ...>, then prepends to the HTML.
// A nil or empty tags value leaves the content unchanged.
func (s *KatexAssetInjection) InjectAssets(ctx context.Context, htmlContent string, tags *AssetTags) string {
	if tags == nil || tags.BaseURL == "" {
		return htmlContent
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	block := buildAssetBlock(tags)
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + block + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + block + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return block + htmlContent
}

// buildAssetBlock builds the <link> and <script> tags for one distribution.
// The base URL is attribute-escaped to keep it from breaking out of the tag.
func buildAssetBlock(tags *AssetTags) string {
	base := html.EscapeString(strings.TrimRight(tags.BaseURL, "/"))

	var b strings.Builder
	b.WriteString(`<link rel="stylesheet" href="` + base + `/katex.min.css">`)
	if tags.Defer {
		b.WriteString(`<script defer src="` + base + `/katex.min.js"></script>`)
		b.WriteString(`<script defer src="` + base + `/contrib/auto-render.min.js"></script>`)
	} else {
		// Legacy mode for hosts whose script loaders reorder deferred tags.
		b.WriteString(`<script src="` + base + `/katex.min.js"></script>`)
		b.WriteString(`<script src="` + base + `/contrib/auto-render.min.js"></script>`)
	}
	return b.String()
}
