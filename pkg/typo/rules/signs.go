package rules

import (
	"github.com/yaklabco/typograf/pkg/glyph"
	"github.com/yaklabco/typograf/pkg/typo"
)

func signRules() []*typo.Rule {
	fraction := glyph.Fractions.GlyphClass()

	return []*typo.Rule{
		typo.MustRule("TY01", "minus-sign",
			"Hyphen before a number, after a space, digit or fraction, becomes a minus sign",
			[]string{tagSign},
			`(?<= |^|[0-9]|`+fraction+`)-(?=[0-9]|`+fraction+`)`, 0,
			typo.Literal("−")),

		typo.MustRule("TY02", "plus-minus",
			`"+/-" becomes "±"`,
			[]string{tagSign},
			`\+/-`, 0,
			typo.Literal("±")),

		typo.MustRule("TY03", "division",
			`"-:-" after a digit or letter becomes "÷"`,
			[]string{tagSign},
			`(?<=(?:[0-9]|[a-z])\s*)-:-`, typo.IgnoreCase,
			typo.Literal("÷")),
	}
}
