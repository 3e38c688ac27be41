package typo

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Supported locales.
const (
	LocaleRussian = "ru"
	LocaleEnglish = "en"
)

// QuoteStyle is the pair of glyphs the quote-pairing rules produce.
type QuoteStyle struct {
	Left  string `json:"left"  yaml:"left"`
	Right string `json:"right" yaml:"right"`
}

//nolint:gochecknoglobals // Immutable presets.
var (
	// RussianQuotes are guillemets, the default style.
	RussianQuotes = QuoteStyle{Left: "«", Right: "»"}

	// EnglishQuotes are curly double quotes.
	EnglishQuotes = QuoteStyle{Left: "“", Right: "”"}
)

// DefaultQuoteStyle returns the style used when none is configured.
func DefaultQuoteStyle() QuoteStyle {
	return RussianQuotes
}

// QuoteStyleForLocale returns the preset for a locale ("ru" or "en").
func QuoteStyleForLocale(locale string) (QuoteStyle, error) {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case LocaleRussian, "":
		return RussianQuotes, nil
	case LocaleEnglish:
		return EnglishQuotes, nil
	default:
		return QuoteStyle{}, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
}

// Validate checks that both glyphs are single, distinct, non-space runes
// other than the straight double quote.
func (q QuoteStyle) Validate() error {
	for _, side := range []struct {
		name  string
		glyph string
	}{
		{"left", q.Left},
		{"right", q.Right},
	} {
		if utf8.RuneCountInString(side.glyph) != 1 {
			return fmt.Errorf("%w: %s quote %q must be a single character", ErrInvalidQuoteStyle, side.name, side.glyph)
		}
		r, _ := utf8.DecodeRuneInString(side.glyph)
		if r == '"' || unicode.IsSpace(r) {
			return fmt.Errorf("%w: %s quote %q is not allowed", ErrInvalidQuoteStyle, side.name, side.glyph)
		}
	}

	if q.Left == q.Right {
		return fmt.Errorf("%w: left and right quotes must differ", ErrInvalidQuoteStyle)
	}

	return nil
}

// String returns the pair as "«…»".
func (q QuoteStyle) String() string {
	return q.Left + "…" + q.Right
}
