package rules

import "github.com/yaklabco/typograf/pkg/typo"

func spacingRules() []*typo.Rule {
	return []*typo.Rule{
		typo.MustRule("TY28", "prepositions",
			"Space after a one- or two-letter word becomes non-breaking",
			[]string{tagNBSP},
			`((?:[ \u00A0]|>|^|\t)`+letter+`{1,2}) `, typo.IgnoreCase|typo.Multiline,
			typo.Template("$1"+nbsp)),

		typo.MustRule("TY29", "particle-dash",
			`Non-breaking space after "-то" or "-ка" reverts to a space`,
			[]string{tagNBSP, tagGuard},
			`-(то|ка)\u00A0`, typo.IgnoreCase,
			typo.Template("-$1 ")),

		typo.MustRule("TY30", "particles",
			"Non-breaking space after a particle moves in front of it",
			[]string{tagNBSP},
			`[\s\u00A0 ](же?|л[иь]|бы?|ка)([.,!?:;])?\u00A0`, typo.IgnoreCase,
			typo.Template(nbsp+"$1$2 ")),
	}
}
