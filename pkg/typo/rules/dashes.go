package rules

import "github.com/yaklabco/typograf/pkg/typo"

func dashRules(q quotes) []*typo.Rule {
	return []*typo.Rule{
		typo.MustRule("TY04", "em-dash",
			"Free-standing hyphen becomes an em-dash",
			[]string{tagDash},
			`(?<![-!а-яёa-z0-9])-(?!-)`, typo.IgnoreCase,
			typo.Literal("—")),

		typo.MustRule("TY05", "dash-nbsp",
			"Space before an em-dash becomes non-breaking unless it follows punctuation, a quote or another space",
			[]string{tagDash, tagNBSP},
			`(?<!^|["`+q.rightIn+`:;.!?…, ]) —(?!-)`, typo.Multiline,
			typo.Literal(nbsp+"—")),

		typo.MustRule("TY06", "dash-spacing",
			"Spaces around an em-dash become one space before and a non-breaking space after",
			[]string{tagDash, tagNBSP},
			`( +)—( *?)(["`+q.leftIn+`a-zа-яё0-9])`, typo.IgnoreCase,
			typo.Template(" —"+nbsp+"$3")),

		typo.MustRule("TY07", "dash-before-digit",
			"Em-dash directly before a digit becomes a minus sign",
			[]string{tagDash, tagSign, tagGuard},
			`—(?=[0-9])`, 0,
			typo.Literal("−")),
	}
}
