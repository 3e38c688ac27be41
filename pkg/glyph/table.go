// Package glyph provides the bidirectional lookup tables between ASCII source
// tokens and the Unicode glyphs that replace them (vulgar fractions,
// superscripts).
//
// Tables are built once from an ordered list of entries and are read-only
// afterwards, so they can be shared freely between goroutines.
package glyph

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Entry maps one source token to the glyph that replaces it.
type Entry struct {
	Token string
	Glyph string
}

// Table is an immutable token-to-glyph mapping with a derived reverse map.
type Table struct {
	name    string
	entries []Entry
	forward map[string]string
	reverse map[string]string
}

// NewTable builds a table from entries in declaration order.
// Later duplicates of a token are ignored. When several tokens share a glyph,
// the reverse mapping resolves to the first declared token.
func NewTable(name string, entries ...Entry) *Table {
	t := &Table{
		name:    name,
		entries: make([]Entry, 0, len(entries)),
		forward: make(map[string]string, len(entries)),
		reverse: make(map[string]string, len(entries)),
	}

	for _, e := range entries {
		if e.Token == "" || e.Glyph == "" {
			continue
		}
		if _, dup := t.forward[e.Token]; dup {
			continue
		}
		t.entries = append(t.entries, e)
		t.forward[e.Token] = e.Glyph
		if _, seen := t.reverse[e.Glyph]; !seen {
			t.reverse[e.Glyph] = e.Token
		}
	}

	return t
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of tokens in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table entries in declaration order.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Lookup returns the glyph for token.
func (t *Table) Lookup(token string) (string, bool) {
	g, ok := t.forward[token]
	return g, ok
}

// ReverseLookup returns the first declared token for glyph.
func (t *Table) ReverseLookup(glyph string) (string, bool) {
	tok, ok := t.reverse[glyph]
	return tok, ok
}

// Glyph returns the glyph for token, or token itself when it is not in the table.
func (t *Table) Glyph(token string) string {
	if g, ok := t.forward[token]; ok {
		return g
	}
	return token
}

// Reverse returns the token for glyph, or glyph itself when it is not in the table.
func (t *Table) Reverse(glyph string) string {
	if tok, ok := t.reverse[glyph]; ok {
		return tok
	}
	return glyph
}

// Glyphs returns the distinct glyphs in declaration order.
func (t *Table) Glyphs() []string {
	out := make([]string, 0, len(t.reverse))
	seen := make(map[string]struct{}, len(t.reverse))
	for _, e := range t.entries {
		if _, ok := seen[e.Glyph]; ok {
			continue
		}
		seen[e.Glyph] = struct{}{}
		out = append(out, e.Glyph)
	}
	return out
}

// Tokens returns the tokens in declaration order.
func (t *Table) Tokens() []string {
	out := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e.Token)
	}
	return out
}

// GlyphClass returns a regular expression character class matching any glyph.
// Every glyph must be a single rune; multi-rune glyphs are skipped.
func (t *Table) GlyphClass() string {
	return charClass(t.Glyphs())
}

// TokenClass returns a character class matching any single-rune token.
func (t *Table) TokenClass() string {
	return charClass(t.Tokens())
}

// TokenAlternation returns a non-capturing alternation of all tokens, longest
// first, so that a token is never shadowed by one of its prefixes.
func (t *Table) TokenAlternation() string {
	tokens := t.Tokens()
	slices.SortStableFunc(tokens, func(a, b string) int {
		return cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a))
	})

	quoted := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		quoted = append(quoted, quoteLiteral(tok))
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}

// charClass builds "[...]" from single-rune members, escaping the characters
// that are special inside a class.
func charClass(members []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, m := range members {
		if utf8.RuneCountInString(m) != 1 {
			continue
		}
		if strings.ContainsAny(m, `\]^-[`) {
			b.WriteByte('\\')
		}
		b.WriteString(m)
	}
	b.WriteByte(']')
	return b.String()
}

// quoteLiteral escapes regular expression metacharacters in s.
func quoteLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`\.+*?()|[]{}^$#/`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
