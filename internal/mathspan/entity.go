package mathspan

import "strings"

// entityEscape maps one space-padded HTML entity token back to its literal
// character. Upstream content filters entity-encode LaTeX control characters
// such as < and &; only the space-padded forms are reversed so that entities
// embedded in ordinary prose survive untouched.
type entityEscape struct {
	token   string
	literal string
}

// Order is fixed for determinism. No token is a substring of another, so the
// order is not otherwise observable. The &#038; and &amp; entries are
// redundant aliases kept for compatibility with older encoded content.
var entityEscapes = []entityEscape{
	{" &lt; ", " < "},
	{" &#060; ", " < "},
	{" &gt; ", " > "},
	{" &#062; ", " > "},
	{" \n ", " "},
	{" \r ", " "},
	{" &#038; ", " & "},
	{" &amp; ", " & "},
}

// decodeEntities reverses the space-padded entity encodings inside matched
// math content. This is exact token substitution, not general HTML entity
// decoding.
func decodeEntities(s string) string {
	for _, e := range entityEscapes {
		s = strings.ReplaceAll(s, e.token, e.literal)
	}
	return s
}
