package mathspan

import (
	"regexp"
	"strings"
)

// tagPattern detects tag boundaries permissively: HTML comments and <...>
// runs. It does not validate HTML; a stray "<" with no closing ">" stays in
// the surrounding text segment.
var tagPattern = regexp.MustCompile(`(?s)<!--.*?-->|<[^>]*>`)

// SegmentKind classifies a segment as tag markup or a text run.
type SegmentKind int

const (
	TextSegment SegmentKind = iota
	TagSegment
)

// Segment is one ordered unit of the original content. Joining the raw text
// of all segments reconstructs the input exactly.
type Segment struct {
	Raw  string
	Kind SegmentKind
}

// Split breaks content into an alternating sequence of tag and text
// segments. Any string is accepted; malformed markup is treated as text.
func Split(content string) []Segment {
	matches := tagPattern.FindAllStringIndex(content, -1)
	segments := make([]Segment, 0, 2*len(matches)+1)
	last := 0
	for _, loc := range matches {
		if loc[0] > last {
			segments = append(segments, Segment{Raw: content[last:loc[0]], Kind: TextSegment})
		}
		segments = append(segments, Segment{Raw: content[loc[0]:loc[1]], Kind: TagSegment})
		last = loc[1]
	}
	if last < len(content) {
		segments = append(segments, Segment{Raw: content[last:], Kind: TextSegment})
	}
	return segments
}

// Join concatenates segment raw text back into a single string.
func Join(segments []Segment) string {
	var b strings.Builder
	size := 0
	for i := range segments {
		size += len(segments[i].Raw)
	}
	b.Grow(size)
	for i := range segments {
		b.WriteString(segments[i].Raw)
	}
	return b.String()
}
