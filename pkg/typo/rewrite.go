package typo

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Match is a single pattern match handed to a rewrite.
type Match struct {
	// Text is the matched substring.
	Text string

	// Groups holds the captured groups; Groups[0] is the whole match.
	// Groups that did not participate in the match are empty.
	Groups []string

	// Index is the rune offset of the match in the buffer.
	Index int
}

// Group returns captured group n, or "" when n is out of range.
func (m Match) Group(n int) string {
	if n < 0 || n >= len(m.Groups) {
		return ""
	}
	return m.Groups[n]
}

// Len returns the rune length of the matched text.
func (m Match) Len() int {
	return utf8.RuneCountInString(m.Text)
}

// RewriteFunc computes the replacement for a match together with the caret
// delta it contributes.
type RewriteFunc func(m Match) (string, int)

// Exact returns text and the rune-length change of replacing m with it.
func Exact(m Match, text string) (string, int) {
	return text, utf8.RuneCountInString(text) - m.Len()
}

// Literal returns a rewrite that replaces every match with text.
func Literal(text string) RewriteFunc {
	return func(m Match) (string, int) {
		return Exact(m, text)
	}
}

// Template returns a rewrite that expands "$n" group references in tmpl.
// "$$" produces a literal dollar sign. The template is parsed once.
func Template(tmpl string) RewriteFunc {
	parts := parseTemplate(tmpl)
	return func(m Match) (string, int) {
		var b strings.Builder
		for _, p := range parts {
			if p.group >= 0 {
				b.WriteString(m.Group(p.group))
				continue
			}
			b.WriteString(p.text)
		}
		return Exact(m, b.String())
	}
}

// templatePart is either literal text or a group reference (group >= 0).
type templatePart struct {
	text  string
	group int
}

func parseTemplate(tmpl string) []templatePart {
	var (
		parts []templatePart
		lit   strings.Builder
	)

	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, templatePart{text: lit.String(), group: -1})
			lit.Reset()
		}
	}

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c != '$' || i+1 >= len(tmpl) {
			lit.WriteByte(c)
			continue
		}

		next := tmpl[i+1]
		if next == '$' {
			lit.WriteByte('$')
			i++
			continue
		}

		end := i + 1
		for end < len(tmpl) && tmpl[end] >= '0' && tmpl[end] <= '9' {
			end++
		}
		if end == i+1 {
			lit.WriteByte(c)
			continue
		}

		n, err := strconv.Atoi(tmpl[i+1 : end])
		if err != nil {
			lit.WriteString(tmpl[i:end])
			i = end - 1
			continue
		}

		flush()
		parts = append(parts, templatePart{group: n})
		i = end - 1
	}
	flush()

	return parts
}

// newMatch copies the engine match into a Match.
func newMatch(m *regexp2.Match) Match {
	groups := make([]string, m.GroupCount())
	for i := range groups {
		if g := m.GroupByNumber(i); g != nil {
			groups[i] = g.String()
		}
	}
	return Match{
		Text:   m.String(),
		Groups: groups,
		Index:  m.Index,
	}
}
