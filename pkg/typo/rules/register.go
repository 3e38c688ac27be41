// Package rules defines the built-in Normalize and Typographify stages.
//
// Rule order inside each stage is load-bearing. The dependencies are:
//
//   - TN03 reduces every dash glyph to "-" so TY01 and TY04 can re-derive
//     the right glyph on each pass.
//   - TY05 and TY06 only see "—" produced by TY04; TY07 repairs the em-dashes
//     TY04 puts in front of digits.
//   - TY13 undoes TY12 on runs of four or more dots.
//   - TY16 undoes TY15 when a digit follows the fraction glyph.
//   - TY18 and TY19 extend or revert glyphs produced by TY17.
//   - TY22 to TY25 repair the output of TY20 and TY21.
//   - TY27 relies on TY21 having turned the closing '"' into the right quote.
//   - TY29 and TY30 adjust the non-breaking spaces inserted by TY28.
package rules

import (
	"fmt"

	"github.com/yaklabco/typograf/pkg/typo"
)

// Normalize returns the canonicalisation stage.
func Normalize() *typo.Stage {
	return typo.NewStage(typo.StageNormalize, normalizeRules()...)
}

// Typographify returns the substitution stage for the given quote style.
func Typographify(style typo.QuoteStyle) (*typo.Stage, error) {
	if err := style.Validate(); err != nil {
		return nil, fmt.Errorf("typographify: %w", err)
	}

	q := newQuotes(style)

	var all []*typo.Rule
	all = append(all, signRules()...)
	all = append(all, dashRules(q)...)
	all = append(all, symbolRules()...)
	all = append(all, glyphRules(q)...)
	all = append(all, quoteRules(q)...)
	all = append(all, spacingRules()...)

	return typo.NewStage(typo.StageTypographify, all...), nil
}

// NewEngine builds an engine over both built-in stages.
func NewEngine(style typo.QuoteStyle, opts typo.Options) (*typo.Engine, error) {
	typographify, err := Typographify(style)
	if err != nil {
		return nil, err
	}
	return typo.NewEngine(Normalize(), typographify, opts), nil
}

// NewRegistry returns a registry of every built-in rule, compiled for the
// default quote style.
func NewRegistry() *typo.Registry {
	reg := typo.NewRegistry()
	reg.RegisterStage(Normalize())

	typographify, err := Typographify(typo.DefaultQuoteStyle())
	if err != nil {
		panic(err)
	}
	reg.RegisterStage(typographify)

	return reg
}

// Stages returns both built-in stages for the default quote style, in pass order.
func Stages() []*typo.Stage {
	typographify, err := Typographify(typo.DefaultQuoteStyle())
	if err != nil {
		panic(err)
	}
	return []*typo.Stage{Normalize(), typographify}
}
