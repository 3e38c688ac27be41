package rules

import "github.com/yaklabco/typograf/pkg/typo"

func symbolRules() []*typo.Rule {
	return []*typo.Rule{
		typo.MustRule("TY08", "copyright",
			`"(c)" with a Latin or Cyrillic c becomes "©"`,
			[]string{tagSymbol},
			`\([cс]\)`, typo.IgnoreCase,
			typo.Literal("©")),

		typo.MustRule("TY09", "registered",
			`"(r)" becomes "®"`,
			[]string{tagSymbol},
			`\(r\)`, typo.IgnoreCase,
			typo.Literal("®")),

		typo.MustRule("TY10", "trademark",
			`"(tm)" becomes "™"`,
			[]string{tagSymbol},
			`\(tm\)`, typo.IgnoreCase,
			typo.Literal("™")),

		typo.MustRule("TY11", "rouble",
			`"(р)" with a Cyrillic er becomes "₽"`,
			[]string{tagSymbol},
			`\(р\)`, typo.IgnoreCase,
			typo.Literal("₽")),

		typo.MustRule("TY12", "ellipsis",
			"Exactly three dots become an ellipsis",
			[]string{tagEllipsis},
			`(?<![.…])\.{3}(?!\.)`, 0,
			typo.Literal("…")),

		typo.MustRule("TY13", "ellipsis-guard",
			"Ellipsis followed by more dots reverts to plain dots",
			[]string{tagEllipsis, tagGuard},
			`…(\.+)`, 0,
			typo.Template("...$1")),
	}
}
