// Package slug derives GitHub-renderer style anchors from heading text.
//
// Rule set (documented contract): lowercase the text, drop every rune that
// is not a letter, digit, space, or hyphen, then replace spaces with
// hyphens. Repeated headings are disambiguated with `-1`, `-2`, ... in
// order of appearance, matching common Markdown-renderer behavior.
package slug

import (
	"fmt"
	"strings"
	"unicode"
)

// Make returns the base slug for a heading without duplicate tracking.
func Make(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Slugger tracks slugs handed out so far and disambiguates duplicates.
// A Slugger is scoped to one generated document; it is not safe for
// concurrent use.
type Slugger struct {
	seen map[string]int
}

// NewSlugger creates an empty Slugger.
func NewSlugger() *Slugger {
	return &Slugger{seen: make(map[string]int)}
}

// Slug returns a unique anchor for the heading text. The first occurrence
// gets the base slug; later occurrences get `-1`, `-2`, ... appended.
func (s *Slugger) Slug(text string) string {
	base := Make(text)
	n := s.seen[base]
	s.seen[base] = n + 1
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}
