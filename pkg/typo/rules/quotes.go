package rules

import "github.com/yaklabco/typograf/pkg/typo"

func quoteRules(q quotes) []*typo.Rule {
	both := q.leftIn + q.rightIn

	return []*typo.Rule{
		typo.MustRule("TY20", "quote-open",
			"Straight quote or right quote followed by a non-space becomes the left quote",
			[]string{tagQuote},
			`["`+q.rightIn+`](?=\S)`, 0,
			typo.Literal(q.style.Left)),

		typo.MustRule("TY21", "quote-close",
			"Straight quote or left quote after a non-space becomes the right quote",
			[]string{tagQuote},
			`(?<=\S)["`+q.leftIn+`]`, 0,
			typo.Literal(q.style.Right)),

		typo.MustRule("TY22", "quote-open-nested",
			"Straight quote before a left quote that opens a word becomes a left quote",
			[]string{tagQuote, tagGuard},
			`"(`+q.left+`[a-zа-яё0-9…])`, typo.IgnoreCase,
			typo.Template(q.style.Left+"$1")),

		typo.MustRule("TY23", "quote-close-nested",
			"Straight quote after a right quote that closes a word becomes a right quote",
			[]string{tagQuote, tagGuard},
			`([a-zа-яё0-9…?!]`+q.right+`)"`, typo.IgnoreCase,
			typo.Template("$1"+q.style.Right)),

		typo.MustRule("TY24", "html-attr-open",
			`Quote glyph opening an HTML attribute value reverts to '"'`,
			[]string{tagQuote, tagHTML, tagGuard},
			`([-a-z0-9]+=)[`+both+`]`, typo.IgnoreCase,
			typo.Template(`$1"`)),

		typo.MustRule("TY25", "html-attr-close",
			`Quote glyph closing an HTML attribute value reverts to '"'`,
			[]string{tagQuote, tagHTML, tagGuard},
			`([-a-z0-9]+=)"([^>`+both+`]*?)[`+both+`]`, typo.IgnoreCase,
			typo.Template(`$1"$2"`)),

		typo.MustRule("TY26", "apostrophe",
			`"'" in English contractions ('s, 't, 'd, 've, 'll, 'clock) becomes "’"`,
			[]string{tagApostrophe},
			`(?<=`+wordChar+`)'(s|t|d|ve|ll|clock)(?!`+wordChar+`)`, typo.IgnoreCase,
			typo.Template("’$1")),

		typo.MustRule("TY27", "minutes-seconds",
			`"5'30"" becomes "5′30″"`,
			[]string{tagPrime},
			`([0-6]?[0-9])['′]([0-6]?[0-9])?([0-9]+)["`+q.rightIn+`]`, 0,
			typo.Template("$1′$2$3″")),
	}
}
