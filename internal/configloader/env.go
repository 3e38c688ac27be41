package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yaklabco/typograf/pkg/config"
)

// envVarPrefix is the prefix for all typograf environment variables.
const envVarPrefix = "TYPOGRAF_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
	envTypeDuration
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
	desc  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"LOCALE":        {field: "locale", typ: envTypeString, desc: "Quote locale: ru or en"},
	"QUOTE_LEFT":    {field: "quotes.left", typ: envTypeString, desc: "Opening quote glyph"},
	"QUOTE_RIGHT":   {field: "quotes.right", typ: envTypeString, desc: "Closing quote glyph"},
	"MOVE_CARET":    {field: "move_caret", typ: envTypeBool, desc: "Caret compensation: true or false"},
	"MATCH_TIMEOUT": {field: "match_timeout", typ: envTypeDuration, desc: "Per-rule match timeout (e.g. 500ms)"},
	"JOBS":          {field: "jobs", typ: envTypeInt, desc: "Number of parallel workers (0 = auto)"},
	"FORMAT":        {field: "format", typ: envTypeString, desc: "Output format: text, json, diff, or summary"},
	"IGNORE":        {field: "ignore", typ: envTypeSlice, desc: "Comma-separated list of ignore patterns"},
	"EXTENSIONS":    {field: "extensions", typ: envTypeSlice, desc: "Comma-separated list of file extensions"},
	"DISABLE":       {field: "disable", typ: envTypeSlice, desc: "Comma-separated rule IDs or names to disable"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with TYPOGRAF_ (e.g., TYPOGRAF_LOCALE).
func LoadFromEnv(cfg *config.Config) error {
	return loadFromLookup(cfg, os.Getenv)
}

// loadFromLookup applies overrides read through getenv.
func loadFromLookup(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeDuration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %q", envVar, value)
		}
		cfg.MatchTimeout = d
		return nil
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "locale":
		cfg.Locale = value
	case "quotes.left":
		cfg.Quotes.Left = value
	case "quotes.right":
		cfg.Quotes.Right = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "move_caret":
		cfg.MoveCaret = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "extensions":
		cfg.Extensions = value
	case "disable":
		cfg.DisableRules = append(cfg.DisableRules, value...)
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.desc
	}
	return vars
}
