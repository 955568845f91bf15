package mathspan

import "regexp"

// Verbatim elements: math syntax inside these must stay literal. Tag-name
// detection only; nesting and attribute correctness are not checked since
// these four elements do not usually interleave.
var (
	verbatimStart = regexp.MustCompile(`(?i)^<(?:pre|code|style|script)\b`)
	verbatimEnd   = regexp.MustCompile(`(?i)^</\s*(?:pre|code|style|script)\s*>`)
)

// passthroughTracker suppresses rewriting between a verbatim start tag and
// the next verbatim end tag. One instance lives per Transform call and is
// never shared.
type passthroughTracker struct {
	suppressed bool
}

// observe updates the suppression state from one tag segment. An end tag for
// any verbatim element clears suppression unconditionally, even when it does
// not match the element that set it.
func (t *passthroughTracker) observe(tag string) {
	switch {
	case verbatimEnd.MatchString(tag):
		t.suppressed = false
	case verbatimStart.MatchString(tag):
		t.suppressed = true
	}
}
