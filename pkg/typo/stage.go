package typo

import (
	"slices"
	"time"
)

// Stage names.
const (
	StageNormalize    = "normalize"
	StageTypographify = "typographify"
)

// Application traces one rule that rewrote the buffer during a pass.
type Application struct {
	Stage    string `json:"stage"`
	RuleID   string `json:"rule_id"`
	RuleName string `json:"rule_name"`
	Matches  int    `json:"matches"`
	Delta    int    `json:"delta"`
}

// StageResult is the outcome of running a stage over a buffer.
type StageResult struct {
	// Text is the rewritten buffer.
	Text string

	// Delta is the sum of the deltas of every rewrite.
	Delta int

	// Applied lists the rules that matched, in stage order.
	Applied []Application

	// RuleErrors maps rule IDs to the errors they failed with.
	RuleErrors map[string]error
}

// Stage is an ordered, immutable sequence of rules.
//
// Order is part of the contract: later rules rely on the text shapes that
// earlier rules produce. There is deliberately no way to insert or reorder.
type Stage struct {
	name  string
	rules []*Rule
}

// NewStage returns a stage running rules in the given order.
func NewStage(name string, rules ...*Rule) *Stage {
	return &Stage{
		name:  name,
		rules: slices.Clone(rules),
	}
}

// Name returns the stage name.
func (s *Stage) Name() string {
	return s.name
}

// Len returns the number of rules.
func (s *Stage) Len() int {
	return len(s.rules)
}

// Rules returns the rules in order. The slice is a copy.
func (s *Stage) Rules() []*Rule {
	return slices.Clone(s.rules)
}

// Rule returns the rule with the given ID or name.
func (s *Stage) Rule(key string) (*Rule, bool) {
	for _, r := range s.rules {
		if r.ID() == key || r.Name() == key {
			return r, true
		}
	}
	return nil, false
}

// Without returns a stage omitting the rules whose ID or name is in keys.
// The remaining rules keep their relative order. Unknown keys are ignored.
func (s *Stage) Without(keys ...string) *Stage {
	if len(keys) == 0 {
		return s
	}

	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}

	kept := make([]*Rule, 0, len(s.rules))
	for _, r := range s.rules {
		_, byID := drop[r.ID()]
		_, byName := drop[r.Name()]
		if byID || byName {
			continue
		}
		kept = append(kept, r)
	}

	return &Stage{name: s.name, rules: kept}
}

// WithMatchTimeout returns a stage whose rules abort a match attempt after d.
func (s *Stage) WithMatchTimeout(d time.Duration) *Stage {
	rules := make([]*Rule, 0, len(s.rules))
	for _, r := range s.rules {
		rules = append(rules, r.WithMatchTimeout(d))
	}
	return &Stage{name: s.name, rules: rules}
}

// Apply runs every rule in order over the full buffer. Each rule sees the
// output of the previous one. A failing rule leaves the buffer as it was,
// is recorded in RuleErrors, and the remaining rules still run.
func (s *Stage) Apply(buf string, rec DeltaRecorder) StageResult {
	result := StageResult{
		Text:       buf,
		RuleErrors: make(map[string]error),
	}

	for _, rule := range s.rules {
		out, matches, delta, err := rule.Apply(result.Text, rec)
		if err != nil {
			result.RuleErrors[rule.ID()] = err
			continue
		}
		if matches == 0 {
			continue
		}

		result.Text = out
		result.Delta += delta
		result.Applied = append(result.Applied, Application{
			Stage:    s.name,
			RuleID:   rule.ID(),
			RuleName: rule.Name(),
			Matches:  matches,
			Delta:    delta,
		})
	}

	return result
}
