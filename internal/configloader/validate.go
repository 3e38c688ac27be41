package configloader

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/typograf/pkg/config"
	"github.com/yaklabco/typograf/pkg/typo"
	"github.com/yaklabco/typograf/pkg/typo/rules"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "quotes.left").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rules).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownFormats lists valid output format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:    true,
	config.FormatTable:   true,
	config.FormatJSON:    true,
	config.FormatDiff:    true,
	config.FormatSummary: true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if _, err := typo.QuoteStyleForLocale(cfg.Locale); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "locale",
			Value:   cfg.Locale,
			Message: fmt.Sprintf("invalid locale %q; must be one of: ru, en", cfg.Locale),
		})
	} else if _, err := cfg.QuoteStyle(); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "quotes",
			Value:   cfg.Quotes,
			Message: err.Error(),
		})
	}

	if cfg.MatchTimeout < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "match_timeout",
			Value:   cfg.MatchTimeout,
			Message: "match_timeout must be >= 0 (0 means no limit)",
		})
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, table, json, diff, summary", cfg.Format),
		})
	}

	if cfg.RuleFormat != "" && !cfg.RuleFormat.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "rule_format",
			Value:   cfg.RuleFormat,
			Message: fmt.Sprintf("invalid rule format %q; must be one of: name, id, combined", cfg.RuleFormat),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	validateExtensions(cfg, result)
	validateRules(cfg, rules.NewRegistry(), result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateExtensions checks that every extension starts with a dot.
func validateExtensions(cfg *config.Config, result *ValidationResult) {
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || utf8.RuneCountInString(ext) < 2 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("extensions[%d]", i),
				Value:   ext,
				Message: fmt.Sprintf("invalid extension %q; must look like \".md\"", ext),
			})
		}
	}
}

// validateRules warns about rule keys and disabled rules that match no rule.
func validateRules(cfg *config.Config, registry *typo.Registry, result *ValidationResult) {
	for key := range cfg.Rules {
		if _, _, ok := registry.Resolve(key); !ok {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "rules." + key,
				Value:   key,
				Message: fmt.Sprintf("unknown rule %q; it will be ignored", key),
			})
		}
	}

	for _, key := range cfg.DisableRules {
		if _, _, ok := registry.Resolve(key); !ok {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "disable",
				Value:   key,
				Message: fmt.Sprintf("unknown rule %q", key),
			})
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return knownFormats[f]
}
