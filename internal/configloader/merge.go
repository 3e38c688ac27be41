package configloader

import (
	"maps"
	"slices"

	"github.com/yaklabco/typograf/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
//
// MoveCaret is a plain bool and cannot be unset here; LoadOptions.MoveCaret
// carries an explicit CLI choice instead.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Locale != "" {
		result.Locale = override.Locale
	}
	if override.Quotes.Left != "" {
		result.Quotes.Left = override.Quotes.Left
	}
	if override.Quotes.Right != "" {
		result.Quotes.Right = override.Quotes.Right
	}
	if override.MatchTimeout != 0 {
		result.MatchTimeout = override.MatchTimeout
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.RuleFormat != "" {
		result.RuleFormat = override.RuleFormat
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.MoveCaret {
		result.MoveCaret = true
	}
	if override.Markdown.SkipCode {
		result.Markdown.SkipCode = true
	}

	result.Rules = mergeRules(base.Rules, override.Rules)

	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}
	if override.Extensions != nil {
		result.Extensions = slices.Clone(override.Extensions)
	}
	if override.DisableRules != nil {
		result.DisableRules = slices.Clone(override.DisableRules)
	}

	return &result
}

// mergeRules performs deep merge of rule configurations.
// Both maps are iterated, with override's values taking precedence.
func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.RuleConfig, len(base)+len(override))
	maps.Copy(result, base)

	for key, val := range override {
		if existing, ok := result[key]; ok {
			result[key] = mergeRuleConfig(existing, val)
		} else {
			result[key] = val
		}
	}

	return result
}

// mergeRuleConfig merges individual rule configurations.
func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	result := base
	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}
	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
