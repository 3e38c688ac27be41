// Package typograf is the public entry point: it builds a corrector from a
// quote style and caret preference and runs correction passes over plain
// strings or editable fields.
package typograf

import (
	"fmt"
	"time"

	"github.com/yaklabco/typograf/pkg/typo"
	"github.com/yaklabco/typograf/pkg/typo/rules"
)

// Result is the outcome of one correction pass.
type Result = typo.Result

// Options configures a Corrector.
type Options struct {
	// Quotes is the quote pair produced by the quote-pairing rules.
	Quotes typo.QuoteStyle

	// MoveCaret enables caret compensation.
	MoveCaret bool

	// Disable lists rule IDs or names to leave out of the pass.
	Disable []string

	// MatchTimeout bounds a single pattern match; zero means no limit.
	MatchTimeout time.Duration
}

// DefaultOptions returns Russian quotes with caret compensation enabled.
func DefaultOptions() Options {
	return Options{
		Quotes:    typo.DefaultQuoteStyle(),
		MoveCaret: true,
	}
}

// Corrector runs correction passes. It is immutable and safe for concurrent use.
type Corrector struct {
	opts   Options
	engine *typo.Engine
}

// New builds a corrector. It fails when the quote style is invalid or a
// disabled rule is unknown.
func New(opts Options) (*Corrector, error) {
	if opts.Quotes == (typo.QuoteStyle{}) {
		opts.Quotes = typo.DefaultQuoteStyle()
	}

	typographify, err := rules.Typographify(opts.Quotes)
	if err != nil {
		return nil, err
	}
	normalize := rules.Normalize()

	if len(opts.Disable) > 0 {
		reg := typo.NewRegistry()
		reg.RegisterStage(normalize)
		reg.RegisterStage(typographify)

		ids, err := reg.Canonicalize(opts.Disable)
		if err != nil {
			return nil, fmt.Errorf("disable rules: %w", err)
		}
		opts.Disable = ids
		normalize = normalize.Without(ids...)
		typographify = typographify.Without(ids...)
	}

	if opts.MatchTimeout > 0 {
		normalize = normalize.WithMatchTimeout(opts.MatchTimeout)
		typographify = typographify.WithMatchTimeout(opts.MatchTimeout)
	}

	return &Corrector{
		opts:   opts,
		engine: typo.NewEngine(normalize, typographify, typo.Options{MoveCaret: opts.MoveCaret}),
	}, nil
}

// Default returns a corrector built from DefaultOptions.
func Default() *Corrector {
	c, err := New(DefaultOptions())
	if err != nil {
		panic(err)
	}
	return c
}

// Configure returns a new corrector with the given settings replaced.
// Nil arguments keep the current value.
func (c *Corrector) Configure(quotes *typo.QuoteStyle, moveCaret *bool) (*Corrector, error) {
	opts := c.opts
	if quotes != nil {
		opts.Quotes = *quotes
	}
	if moveCaret != nil {
		opts.MoveCaret = *moveCaret
	}
	return New(opts)
}

// Options returns the options the corrector was built with. Disabled rules
// are reported by ID.
func (c *Corrector) Options() Options {
	opts := c.opts
	opts.Disable = append([]string(nil), c.opts.Disable...)
	return opts
}

// Engine returns the underlying engine.
func (c *Corrector) Engine() *typo.Engine {
	return c.engine
}

// Correct runs one pass over text with the caret at offset caret (in runes).
// Text should be valid UTF-8. Invalid bytes outside matched text pass through
// unchanged and count as one rune each; inside a match they become U+FFFD.
func (c *Corrector) Correct(text string, caret int) Result {
	return c.engine.Correct(text, caret)
}

// CorrectString corrects text and discards caret information.
func (c *Corrector) CorrectString(text string) string {
	return c.engine.Correct(text, 0).Text
}

// Process reads the field, corrects its value, and writes the text and caret
// back. With caret compensation off the field caret is never read or written.
func (c *Corrector) Process(f Field) Result {
	caret := 0
	if c.opts.MoveCaret {
		caret = f.CaretOffset()
	}

	res := c.engine.Correct(f.Value(), caret)
	f.SetValue(res.Text)

	if c.opts.MoveCaret {
		f.SetCaretOffset(res.Caret)
	}
	return res
}
