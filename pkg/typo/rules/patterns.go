package rules

import (
	"strings"

	"github.com/yaklabco/typograf/pkg/typo"
)

// Shared pattern fragments.
const (
	// wordChar is an ASCII word character.
	wordChar = `[0-9A-Za-z_]`

	// letter is a Latin or Cyrillic letter; rules using it match case-insensitively.
	letter = `[a-zа-яё]`

	nbsp = "\u00a0"
)

// Tags.
const (
	tagSpace       = "space"
	tagDash        = "dash"
	tagSign        = "sign"
	tagSymbol      = "symbol"
	tagEllipsis    = "ellipsis"
	tagFraction    = "fraction"
	tagSuperscript = "superscript"
	tagQuote       = "quote"
	tagHTML        = "html"
	tagApostrophe  = "apostrophe"
	tagPrime       = "prime"
	tagNBSP        = "nbsp"
	tagGuard       = "guard"
)

// quotes holds a quote style escaped for use in patterns.
type quotes struct {
	style typo.QuoteStyle

	// left and right are escaped for use outside a character class.
	left, right string

	// leftIn and rightIn are escaped for use inside a character class.
	leftIn, rightIn string
}

func newQuotes(style typo.QuoteStyle) quotes {
	return quotes{
		style:   style,
		left:    escapeLiteral(style.Left),
		right:   escapeLiteral(style.Right),
		leftIn:  escapeInClass(style.Left),
		rightIn: escapeInClass(style.Right),
	}
}

func escapeLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`\.+*?()|[]{}^$#`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func escapeInClass(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`\]^-[`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
