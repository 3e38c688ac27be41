package rules

import "github.com/yaklabco/typograf/pkg/typo"

func normalizeRules() []*typo.Rule {
	return []*typo.Rule{
		typo.MustRule("TN01", "space-collapse",
			"Collapse a run of spaces containing a non-breaking or narrow non-breaking space into one space",
			[]string{tagSpace, tagNBSP},
			`[ \u00A0\u202F]*[\u00A0\u202F][ \u00A0\u202F]*`, 0,
			typo.Literal(" ")),

		typo.MustRule("TN02", "double-hyphen",
			`Collapse "--" into "-" unless it is part of "!--", "---" or "-->"`,
			[]string{tagDash},
			`(?<![!-])--(?![->])`, 0,
			typo.Literal("-")),

		typo.MustRule("TN03", "dash-canonical",
			"Reduce em-dash, en-dash and minus sign to a hyphen",
			[]string{tagDash},
			`[—–−]`, 0,
			typo.Literal("-")),
	}
}
