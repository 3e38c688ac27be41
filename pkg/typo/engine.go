package typo

import "unicode/utf8"

// Options configures an Engine.
type Options struct {
	// MoveCaret enables caret compensation. When false no caret state is
	// captured and the returned caret is the input offset, clamped.
	MoveCaret bool
}

// Result is the outcome of one correction pass.
type Result struct {
	// Text is the corrected buffer.
	Text string `json:"text"`

	// Caret is the adjusted caret offset in runes.
	Caret int `json:"caret"`

	// Delta is the summed delta of every rewrite in both stages.
	Delta int `json:"delta"`

	// Applied traces the rules that fired, in pass order.
	Applied []Application `json:"applied,omitempty"`

	// RuleErrors maps rule IDs to errors from rules that failed.
	RuleErrors map[string]error `json:"-"`
}

// Changed reports whether the pass rewrote anything.
func (r *Result) Changed() bool {
	return len(r.Applied) > 0
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool {
	return len(r.RuleErrors) > 0
}

// Engine runs the Normalize stage followed by the Typographify stage.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	normalize    *Stage
	typographify *Stage
	opts         Options
}

// NewEngine returns an engine over the two stages. Nil stages are treated as empty.
func NewEngine(normalize, typographify *Stage, opts Options) *Engine {
	if normalize == nil {
		normalize = NewStage(StageNormalize)
	}
	if typographify == nil {
		typographify = NewStage(StageTypographify)
	}
	return &Engine{
		normalize:    normalize,
		typographify: typographify,
		opts:         opts,
	}
}

// Normalize returns the canonicalisation stage.
func (e *Engine) Normalize() *Stage {
	return e.normalize
}

// Typographify returns the substitution stage.
func (e *Engine) Typographify() *Stage {
	return e.typographify
}

// Options returns the engine options.
func (e *Engine) Options() Options {
	return e.opts
}

// Correct runs one pass over text. caret is a rune offset; out-of-range
// values are accepted and clamped on output. Correct never fails: rules that
// error are skipped and reported in Result.RuleErrors.
func (e *Engine) Correct(text string, caret int) Result {
	if !e.opts.MoveCaret {
		return e.correctWithoutCaret(text, caret)
	}

	first := Capture(text, caret)
	normalized := e.normalize.Apply(text, first)
	caret = first.Adjust(normalized.Text)

	second := Capture(normalized.Text, caret)
	final := e.typographify.Apply(normalized.Text, second)

	return merge(normalized, final, second.Adjust(final.Text))
}

func (e *Engine) correctWithoutCaret(text string, caret int) Result {
	normalized := e.normalize.Apply(text, nil)
	final := e.typographify.Apply(normalized.Text, nil)

	return merge(normalized, final, Clamp(caret, utf8.RuneCountInString(final.Text)))
}

func merge(normalized, final StageResult, caret int) Result {
	res := Result{
		Text:       final.Text,
		Caret:      caret,
		Delta:      normalized.Delta + final.Delta,
		RuleErrors: make(map[string]error, len(normalized.RuleErrors)+len(final.RuleErrors)),
	}

	res.Applied = append(res.Applied, normalized.Applied...)
	res.Applied = append(res.Applied, final.Applied...)

	for id, err := range normalized.RuleErrors {
		res.RuleErrors[id] = err
	}
	for id, err := range final.RuleErrors {
		res.RuleErrors[id] = err
	}

	return res
}
