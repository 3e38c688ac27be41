package typo

import "errors"

var (
	// ErrInvalidQuoteStyle is returned when a quote style cannot be used by the
	// quote-pairing rules.
	ErrInvalidQuoteStyle = errors.New("invalid quote style")

	// ErrUnknownRule is returned when a rule key matches no registered rule.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrUnknownLocale is returned for locales without a quote style.
	ErrUnknownLocale = errors.New("unknown locale")
)
