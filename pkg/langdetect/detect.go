// Package langdetect classifies files before correction.
// It uses go-enry to tell prose apart from source code, data files,
// vendored trees, and generated output, none of which typography applies to.
package langdetect

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Kind is the broad category of a file.
type Kind int

const (
	// KindUnknown means go-enry could not name the language.
	KindUnknown Kind = iota
	// KindProse covers Markdown, plain text, and other prose formats.
	KindProse
	// KindMarkup covers HTML, XML, and similar markup.
	KindMarkup
	// KindCode covers programming languages.
	KindCode
	// KindData covers JSON, YAML, CSV, and similar data formats.
	KindData
	// KindBinary means the content is not text.
	KindBinary
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindProse:
		return "prose"
	case KindMarkup:
		return "markup"
	case KindCode:
		return "code"
	case KindData:
		return "data"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Classification is the result of classifying one file.
type Classification struct {
	// Language is the go-enry language name, e.g. "Markdown"; empty if unknown.
	Language string

	// Kind is the broad category of the language.
	Kind Kind

	// Vendored is true for paths under vendor/, node_modules/, and similar.
	Vendored bool

	// Generated is true for files go-enry recognises as generated.
	Generated bool
}

// Correctable reports whether typography should be applied to the file.
// Prose and files of unknown language are correctable unless vendored or generated.
func (c Classification) Correctable() bool {
	if c.Vendored || c.Generated {
		return false
	}
	return c.Kind == KindProse || c.Kind == KindUnknown
}

// Reason returns a short explanation when the file is not correctable.
func (c Classification) Reason() string {
	switch {
	case c.Vendored:
		return "vendored"
	case c.Generated:
		return "generated"
	case c.Correctable():
		return ""
	case c.Language != "":
		return c.Kind.String() + " (" + c.Language + ")"
	default:
		return c.Kind.String()
	}
}

// Classify inspects the path and content of a file.
func Classify(path string, content []byte) Classification {
	slashed := filepath.ToSlash(path)
	result := Classification{
		Vendored:  enry.IsVendor(slashed),
		Generated: enry.IsGenerated(slashed, content),
	}

	if enry.IsBinary(content) {
		result.Kind = KindBinary
		return result
	}

	result.Language = enry.GetLanguage(filepath.Base(path), content)
	result.Kind = kindOf(result.Language)

	return result
}

// kindOf maps go-enry language types onto Kind.
func kindOf(language string) Kind {
	if language == "" {
		return KindUnknown
	}

	switch enry.GetLanguageType(language) {
	case enry.Prose:
		return KindProse
	case enry.Markup:
		return KindMarkup
	case enry.Programming:
		return KindCode
	case enry.Data:
		return KindData
	default:
		return KindUnknown
	}
}
