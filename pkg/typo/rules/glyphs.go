package rules

import (
	"strings"

	"github.com/yaklabco/typograf/pkg/glyph"
	"github.com/yaklabco/typograf/pkg/typo"
)

func glyphRules(q quotes) []*typo.Rule {
	fractions := glyph.Fractions
	supers := glyph.Superscripts

	return []*typo.Rule{
		typo.MustRule("TY14", "size",
			`"NxM" with a Latin or Cyrillic x becomes "N×M"`,
			[]string{tagSymbol},
			`([0-9])[xх]([0-9])`, typo.IgnoreCase,
			typo.Template("$1×$2")),

		typo.MustRule("TY15", "fraction",
			"Free-standing fraction with a vulgar-fraction glyph becomes the glyph",
			[]string{tagFraction},
			`(?<!`+wordChar+`)`+fractions.TokenAlternation()+`(?!`+wordChar+`)`, 0,
			func(m typo.Match) (string, int) {
				return typo.Exact(m, fractions.Glyph(m.Text))
			}),

		typo.MustRule("TY16", "fraction-guard",
			"Fraction glyph followed by a digit reverts to its source form",
			[]string{tagFraction, tagGuard},
			`(`+fractions.GlyphClass()+`)([0-9])`, 0,
			func(m typo.Match) (string, int) {
				return typo.Exact(m, fractions.Reverse(m.Group(1))+m.Group(2))
			}),

		typo.MustRule("TY17", "superscript",
			`"X^t" becomes X followed by the superscript form of t`,
			[]string{tagSuperscript},
			`([^\s"`+q.leftIn+q.rightIn+`])\^(`+supers.TokenClass()+`)`, typo.IgnoreCase,
			func(m typo.Match) (string, int) {
				return typo.Exact(m, m.Group(1)+supers.Glyph(strings.ToLower(m.Group(2))))
			}),

		typo.MustRule("TY18", "superscript-run",
			"Digits and signs following a superscript glyph become superscript too",
			[]string{tagSuperscript},
			`(`+supers.GlyphClass()+`)([`+escapeInClass(glyph.SuperscriptRun)+`]+)`, 0,
			func(m typo.Match) (string, int) {
				var b strings.Builder
				b.WriteString(m.Group(1))
				for _, r := range m.Group(2) {
					b.WriteString(supers.Glyph(string(r)))
				}
				return typo.Exact(m, b.String())
			}),

		typo.MustRule("TY19", "superscript-after-space",
			"Superscript glyph after a space reverts to its source character",
			[]string{tagSuperscript, tagGuard},
			` (`+supers.GlyphClass()+`)`, 0,
			func(m typo.Match) (string, int) {
				return typo.Exact(m, " "+supers.Reverse(m.Group(1)))
			}),
	}
}
