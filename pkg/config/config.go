// Package config defines configuration types for typograf.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/yaklabco/typograf/pkg/typo"
	"github.com/yaklabco/typograf/pkg/typograf"
)

// RuleConfig holds per-rule configuration.
type RuleConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// QuotesConfig overrides the quote glyphs of the locale.
type QuotesConfig struct {
	Left  string `yaml:"left,omitempty"`
	Right string `yaml:"right,omitempty"`
}

// MarkdownConfig controls how Markdown files are split before correction.
type MarkdownConfig struct {
	// SkipCode leaves code spans, code blocks, and raw HTML untouched.
	SkipCode bool `yaml:"skip_code"`
}

// OutputFormat specifies the output format for results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "em-dash"
	RuleFormatID       RuleFormat = "id"       // "TY04"
	RuleFormatCombined RuleFormat = "combined" // "TY04/em-dash"
)

// IsValid returns true if the rule format is known.
func (f RuleFormat) IsValid() bool {
	switch f {
	case RuleFormatName, RuleFormatID, RuleFormatCombined:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure.
type Config struct {
	// Locale selects the default quote style ("ru" or "en").
	Locale string `yaml:"locale"`

	// Quotes overrides the locale quote glyphs.
	Quotes QuotesConfig `yaml:"quotes"`

	// MoveCaret enables caret compensation.
	MoveCaret bool `yaml:"move_caret"`

	// MatchTimeout bounds a single rule match; zero means no limit.
	MatchTimeout time.Duration `yaml:"match_timeout"`

	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Extensions lists the file extensions checked when walking directories.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// Markdown configures Markdown handling.
	Markdown MarkdownConfig `yaml:"markdown"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// DisableRules contains rule IDs or names to disable.
	DisableRules []string `yaml:"-"`
}

// DefaultExtensions are the file extensions checked by default.
func DefaultExtensions() []string {
	return []string{".md", ".markdown", ".txt"}
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Locale:     typo.LocaleRussian,
		MoveCaret:  true,
		Rules:      make(map[string]RuleConfig),
		Extensions: DefaultExtensions(),
		Markdown:   MarkdownConfig{SkipCode: true},
		Format:     FormatText,
		RuleFormat: RuleFormatName,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}

// QuoteStyle resolves the locale preset and applies the overrides.
func (c *Config) QuoteStyle() (typo.QuoteStyle, error) {
	style, err := typo.QuoteStyleForLocale(c.Locale)
	if err != nil {
		return typo.QuoteStyle{}, err
	}
	if c.Quotes.Left != "" {
		style.Left = c.Quotes.Left
	}
	if c.Quotes.Right != "" {
		style.Right = c.Quotes.Right
	}
	if err := style.Validate(); err != nil {
		return typo.QuoteStyle{}, err
	}
	return style, nil
}

// DisabledRules returns the rule keys disabled by the rules map or the CLI,
// sorted and without duplicates.
func (c *Config) DisabledRules() []string {
	var keys []string
	for key, rc := range c.Rules {
		if rc.Enabled != nil && !*rc.Enabled {
			keys = append(keys, key)
		}
	}
	keys = append(keys, c.DisableRules...)

	slices.Sort(keys)
	return slices.Compact(keys)
}

// CorrectorOptions converts the configuration into corrector options.
func (c *Config) CorrectorOptions() (typograf.Options, error) {
	style, err := c.QuoteStyle()
	if err != nil {
		return typograf.Options{}, fmt.Errorf("quotes: %w", err)
	}
	return typograf.Options{
		Quotes:       style,
		MoveCaret:    c.MoveCaret,
		Disable:      c.DisabledRules(),
		MatchTimeout: c.MatchTimeout,
	}, nil
}
