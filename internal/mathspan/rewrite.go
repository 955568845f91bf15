package mathspan

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout bounds backtracking per text segment. The content
// grammar keeps backtracking linear in practice; the timeout is the hard
// stop for adversarial input.
const DefaultMatchTimeout = 250 * time.Millisecond

// mathPattern matches display math ($$...$$) before inline math ($...$) at
// every position, so adjacent double dollars are never read as two inline
// spans. Content is the shortest sequence of non-dollar runs, or single
// dollars not immediately preceded by another dollar, so the first closing
// delimiter terminates the span. Compiled in free-spacing mode.
const mathPattern = `\$\$ ( (?: [^$]+ | (?<!\$)\$ )+? ) \$\$
                   | \$   ( (?: [^$]+ | (?<!\$)\$ )+? ) \$`

// CSS classes the client-side renderer selects on.
const (
	inlineClass    = "katex math inline"
	multiLineClass = "katex math multi-line"
)

// underscoreRestorer undoes the emphasis markup a Markdown stage upstream
// may have produced from underscores that belonged to math content.
var underscoreRestorer = strings.NewReplacer("<em>", "_", "</em>", "_")

// Filter rewrites math spans in HTML-bearing text. It holds only the
// compiled pattern and is safe for concurrent use.
type Filter struct {
	re *regexp2.Regexp
}

// NewFilter compiles the math pattern. A positive matchTimeout caps the time
// the engine may spend on a single segment; zero keeps the engine default.
func NewFilter(matchTimeout time.Duration) *Filter {
	re := regexp2.MustCompile(mathPattern,
		regexp2.IgnoreCase|regexp2.Singleline|regexp2.IgnorePatternWhitespace)
	if matchTimeout > 0 {
		re.MatchTimeout = matchTimeout
	}
	return &Filter{re: re}
}

// Transform rewrites every accepted math span in content into a <span>
// element carrying the renderer classes, leaving all other bytes intact.
// It returns the rewritten content and the number of spans emitted.
// Transform never fails: content without math, math rejected by validation,
// and segments that hit a matcher failure all pass through unchanged.
func (f *Filter) Transform(content string) (string, int) {
	segments := Split(content)
	var tracker passthroughTracker
	total := 0
	for i := range segments {
		seg := &segments[i]
		if seg.Kind == TagSegment {
			tracker.observe(seg.Raw)
			continue
		}
		if tracker.suppressed {
			continue
		}
		rewritten, n := f.rewriteSegment(seg.Raw)
		seg.Raw = rewritten
		total += n
	}
	return Join(segments), total
}

// rewriteSegment applies the matcher to one eligible text segment.
func (f *Filter) rewriteSegment(text string) (string, int) {
	if !strings.Contains(text, "$") {
		return text, 0
	}

	count := 0
	out, err := f.re.ReplaceFunc(text, func(m regexp2.Match) string {
		content, display := spanContent(m)
		if boundaryWhitespace(content) {
			// Whitespace next to a delimiter marks prose, not math:
			// "$5 - $10" stays a currency range.
			return m.String()
		}
		count++
		decoded := strings.TrimSpace(decodeEntities(content))
		class := inlineClass
		if display {
			class = multiLineClass
		}
		return `<span class="` + class + `">` + decoded + `</span>`
	}, -1, -1)
	if err != nil {
		// Matcher failure (e.g. timeout): leave this segment's math
		// unrendered rather than abort the whole document.
		return text, 0
	}

	if count > 0 {
		out = underscoreRestorer.Replace(out)
	}
	return out, count
}

// spanContent extracts the captured inner content and whether the span was
// matched by the display alternative.
func spanContent(m regexp2.Match) (string, bool) {
	if g := m.GroupByNumber(1); len(g.Captures) > 0 {
		return g.String(), true
	}
	return m.GroupByNumber(2).String(), false
}

// boundaryWhitespace reports whether the first or last byte of the raw
// matched content is ASCII whitespace. Only the single first and last byte
// count; Unicode space variants do not reject a span.
func boundaryWhitespace(s string) bool {
	if s == "" {
		return true
	}
	return isSpaceByte(s[0]) || isSpaceByte(s[len(s)-1])
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
