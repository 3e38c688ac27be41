// Package typo provides the ordered rule-transformation engine: rules,
// stages, caret compensation, and the two-stage correction pipeline.
package typo

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Flags modify how a rule pattern is matched.
type Flags uint8

const (
	// IgnoreCase makes the pattern case-insensitive.
	IgnoreCase Flags = 1 << iota

	// Multiline makes ^ and $ match at line boundaries.
	Multiline
)

func (f Flags) options() regexp2.RegexOptions {
	opts := regexp2.None
	if f&IgnoreCase != 0 {
		opts |= regexp2.IgnoreCase
	}
	if f&Multiline != 0 {
		opts |= regexp2.Multiline
	}
	return opts
}

// String returns the flags in regex notation ("im", "i", ...).
func (f Flags) String() string {
	s := ""
	if f&IgnoreCase != 0 {
		s += "i"
	}
	if f&Multiline != 0 {
		s += "m"
	}
	return s
}

// DeltaRecorder receives the caret delta of every rewrite a rule performs.
type DeltaRecorder interface {
	Record(delta int)
}

// Rule is one pattern-match-and-rewrite step. Rules are immutable once built.
type Rule struct {
	id      string
	name    string
	desc    string
	tags    []string
	pattern string
	flags   Flags
	timeout time.Duration
	re      *regexp2.Regexp
	rewrite RewriteFunc
}

// NewRule compiles pattern and returns a rule that rewrites its matches.
func NewRule(
	id, name, desc string,
	tags []string,
	pattern string,
	flags Flags,
	rewrite RewriteFunc,
) (*Rule, error) {
	if rewrite == nil {
		return nil, fmt.Errorf("rule %s: nil rewrite", id)
	}

	re, err := regexp2.Compile(pattern, flags.options())
	if err != nil {
		return nil, fmt.Errorf("rule %s: compile pattern: %w", id, err)
	}

	return &Rule{
		id:      id,
		name:    name,
		desc:    desc,
		tags:    tags,
		pattern: pattern,
		flags:   flags,
		re:      re,
		rewrite: rewrite,
	}, nil
}

// MustRule is like NewRule but panics if the pattern does not compile.
func MustRule(
	id, name, desc string,
	tags []string,
	pattern string,
	flags Flags,
	rewrite RewriteFunc,
) *Rule {
	rule, err := NewRule(id, name, desc, tags, pattern, flags, rewrite)
	if err != nil {
		panic(err)
	}
	return rule
}

// ID returns the stable rule identifier (e.g. "TY04").
func (r *Rule) ID() string {
	return r.id
}

// Name returns the kebab-case rule name (e.g. "em-dash").
func (r *Rule) Name() string {
	return r.name
}

// Description returns what the rule rewrites.
func (r *Rule) Description() string {
	return r.desc
}

// Tags returns categorization tags for the rule.
func (r *Rule) Tags() []string {
	return r.tags
}

// Pattern returns the source of the compiled pattern.
func (r *Rule) Pattern() string {
	return r.pattern
}

// Flags returns the match flags.
func (r *Rule) Flags() Flags {
	return r.flags
}

// MatchTimeout returns the per-match time limit; zero means none.
func (r *Rule) MatchTimeout() time.Duration {
	return r.timeout
}

// WithMatchTimeout returns a copy of the rule whose matching fails once a
// single match attempt runs longer than d. Zero or negative d removes the limit.
func (r *Rule) WithMatchTimeout(d time.Duration) *Rule {
	clone := *r
	clone.re = regexp2.MustCompile(r.pattern, r.flags.options())
	clone.timeout = 0
	if d > 0 {
		clone.re.MatchTimeout = d
		clone.timeout = d
	}
	return &clone
}

// Apply replaces every non-overlapping match in buf, left to right, and
// returns the rewritten buffer, the number of matches, and the summed delta.
//
// Deltas are reported to rec, one per rewrite, only when the whole rule
// succeeded. A nil rec disables tracking. On error buf is returned unchanged.
//
// Text outside the matches is copied byte for byte, so invalid UTF-8 there
// survives. Each invalid byte counts as one rune.
func (r *Rule) Apply(buf string, rec DeltaRecorder) (string, int, int, error) {
	text := []rune(buf)

	m, err := r.re.FindRunesMatch(text)
	if err != nil {
		return buf, 0, 0, fmt.Errorf("rule %s: %w", r.id, err)
	}
	if m == nil {
		return buf, 0, 0, nil
	}

	var (
		out     strings.Builder
		deltas  []int
		prev    int
		offsets = byteOffsets(buf, len(text))
	)
	out.Grow(len(buf))

	for m != nil {
		out.WriteString(buf[offsets[prev]:offsets[m.Index]])

		replacement, delta := r.rewrite(newMatch(m))
		out.WriteString(replacement)
		deltas = append(deltas, delta)
		prev = m.Index + m.Length

		m, err = r.re.FindNextMatch(m)
		if err != nil {
			return buf, 0, 0, fmt.Errorf("rule %s: %w", r.id, err)
		}
	}
	out.WriteString(buf[offsets[prev]:])

	total := 0
	for _, d := range deltas {
		total += d
		if rec != nil {
			rec.Record(d)
		}
	}

	return out.String(), len(deltas), total, nil
}

// byteOffsets maps rune index i of buf to its byte offset, with one extra
// entry for len(buf). Decoding matches the []rune conversion.
func byteOffsets(buf string, runes int) []int {
	offsets := make([]int, 0, runes+1)
	for i := 0; i < len(buf); {
		offsets = append(offsets, i)
		_, size := utf8.DecodeRuneInString(buf[i:])
		i += size
	}
	return append(offsets, len(buf))
}
