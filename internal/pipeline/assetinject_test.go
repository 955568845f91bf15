package pipeline

import (
	"context"
	"strings"
	"testing"
)

const testBaseURL = "https://cdn.example.com/katex"

func TestInjectAssetsPlacement(t *testing.T) {
	s := &KatexAssetInjection{}
	ctx := context.Background()
	tags := &AssetTags{BaseURL: testBaseURL, Defer: true}

	tests := []struct {
		name      string
		html      string
		wantAfter string // block must appear immediately after this marker
	}{
		{
			name:      "before closing head",
			html:      "<html><head><title>t</title></head><body>x</body></html>",
			wantAfter: "<title>t</title>",
		},
		{
			name:      "after body when no head",
			html:      `<body class="page">x</body>`,
			wantAfter: `<body class="page">`,
		},
		{
			name:      "prepended when no head or body",
			html:      "<p>x</p>",
			wantAfter: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.InjectAssets(ctx, tt.html, tags)
			pos := 0
			if tt.wantAfter != "" {
				i := strings.Index(got, tt.wantAfter)
				if i == -1 {
					t.Fatalf("marker %q missing from output:\n%s", tt.wantAfter, got)
				}
				pos = i + len(tt.wantAfter)
			}
			if !strings.HasPrefix(got[pos:], `<link rel="stylesheet"`) {
				t.Errorf("block not inserted after %q:\n%s", tt.wantAfter, got)
			}
		})
	}
}

func TestInjectAssetsTags(t *testing.T) {
	s := &KatexAssetInjection{}
	ctx := context.Background()

	t.Run("deferred scripts", func(t *testing.T) {
		got := s.InjectAssets(ctx, "<head></head>", &AssetTags{BaseURL: testBaseURL, Defer: true})
		if !strings.Contains(got, `<script defer src="`+testBaseURL+`/katex.min.js"></script>`) {
			t.Errorf("missing deferred script tag:\n%s", got)
		}
		if !strings.Contains(got, `href="`+testBaseURL+`/katex.min.css"`) {
			t.Errorf("missing stylesheet tag:\n%s", got)
		}
	})

	t.Run("legacy synchronous scripts", func(t *testing.T) {
		got := s.InjectAssets(ctx, "<head></head>", &AssetTags{BaseURL: testBaseURL})
		if strings.Contains(got, "defer") {
			t.Errorf("legacy mode should not defer:\n%s", got)
		}
		if !strings.Contains(got, `<script src="`+testBaseURL+`/katex.min.js"></script>`) {
			t.Errorf("missing script tag:\n%s", got)
		}
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		got := s.InjectAssets(ctx, "<head></head>", &AssetTags{BaseURL: testBaseURL + "/"})
		if strings.Contains(got, testBaseURL+"//katex.min.js") {
			t.Errorf("double slash in asset URL:\n%s", got)
		}
	})

	t.Run("base URL attribute escaped", func(t *testing.T) {
		got := s.InjectAssets(ctx, "<head></head>", &AssetTags{BaseURL: `https://x/"><script>`})
		if strings.Contains(got, `/"><script>`) {
			t.Errorf("base URL broke out of attribute:\n%s", got)
		}
	})
}

func TestInjectAssetsNoop(t *testing.T) {
	s := &KatexAssetInjection{}
	ctx := context.Background()

	if got := s.InjectAssets(ctx, "<p>x</p>", nil); got != "<p>x</p>" {
		t.Errorf("nil tags should be a no-op, got %q", got)
	}
	if got := s.InjectAssets(ctx, "<p>x</p>", &AssetTags{}); got != "<p>x</p>" {
		t.Errorf("empty base URL should be a no-op, got %q", got)
	}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	tags := &AssetTags{BaseURL: testBaseURL}
	if got := s.InjectAssets(cancelled, "<p>x</p>", tags); got != "<p>x</p>" {
		t.Errorf("cancelled context should be a no-op, got %q", got)
	}
}
