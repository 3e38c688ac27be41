package configloader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/typograf/pkg/config"
)

func envLookup(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadFromEnv(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	err := loadFromLookup(cfg, envLookup(map[string]string{
		"TYPOGRAF_LOCALE":        "en",
		"TYPOGRAF_QUOTE_RIGHT":   "»",
		"TYPOGRAF_MOVE_CARET":    "0",
		"TYPOGRAF_MATCH_TIMEOUT": "2s",
		"TYPOGRAF_JOBS":          "3",
		"TYPOGRAF_FORMAT":        "json",
		"TYPOGRAF_IGNORE":        "vendor/**, ,build/**",
		"TYPOGRAF_DISABLE":       "TY12,em-dash",
	}))
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "»", cfg.Quotes.Right)
	assert.False(t, cfg.MoveCaret)
	assert.Equal(t, 2*time.Second, cfg.MatchTimeout)
	assert.Equal(t, 3, cfg.Jobs)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, []string{"vendor/**", "build/**"}, cfg.Ignore)
	assert.Equal(t, []string{"TY12", "em-dash"}, cfg.DisableRules)
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{"bool", map[string]string{"TYPOGRAF_MOVE_CARET": "maybe"}, "invalid boolean for TYPOGRAF_MOVE_CARET"},
		{"int", map[string]string{"TYPOGRAF_JOBS": "many"}, "invalid integer for TYPOGRAF_JOBS"},
		{"duration", map[string]string{"TYPOGRAF_MATCH_TIMEOUT": "soon"}, "invalid duration for TYPOGRAF_MATCH_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := loadFromLookup(config.NewConfig(), envLookup(tt.vars))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFromEnv_NilConfig(t *testing.T) {
	t.Parallel()
	assert.NoError(t, loadFromLookup(nil, envLookup(nil)))
}

func TestEnvVarNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TYPOGRAF_LOCALE", GetEnvVarName("locale"))
	assert.Empty(t, GetEnvVarName("flavor"))

	vars := ListEnvVars()
	assert.Len(t, vars, len(envMappings))
	assert.Contains(t, vars, "TYPOGRAF_MATCH_TIMEOUT")
}

func TestParseSliceValue(t *testing.T) {
	t.Parallel()

	assert.Nil(t, parseSliceValue(""))
	assert.Equal(t, []string{"a", "b"}, parseSliceValue(" a ,b,"))
}
