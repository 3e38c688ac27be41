package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/typograf/pkg/config"
	"github.com/yaklabco/typograf/pkg/typo"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, typo.LocaleRussian, cfg.Locale)
	assert.True(t, cfg.MoveCaret)
	assert.True(t, cfg.Markdown.SkipCode)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, config.RuleFormatName, cfg.RuleFormat)
	assert.Equal(t, config.DefaultExtensions(), cfg.Extensions)
	assert.NotNil(t, cfg.Rules)
	assert.Zero(t, cfg.MatchTimeout)
}

func TestConfig_QuoteStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.Config
		want    typo.QuoteStyle
		wantErr error
	}{
		{
			name: "russian locale",
			cfg:  config.Config{Locale: "ru"},
			want: typo.RussianQuotes,
		},
		{
			name: "empty locale defaults to russian",
			cfg:  config.Config{},
			want: typo.RussianQuotes,
		},
		{
			name: "english locale",
			cfg:  config.Config{Locale: "EN"},
			want: typo.EnglishQuotes,
		},
		{
			name: "override one side",
			cfg:  config.Config{Locale: "en", Quotes: config.QuotesConfig{Right: "»"}},
			want: typo.QuoteStyle{Left: "“", Right: "»"},
		},
		{
			name:    "unknown locale",
			cfg:     config.Config{Locale: "de"},
			wantErr: typo.ErrUnknownLocale,
		},
		{
			name:    "invalid override",
			cfg:     config.Config{Quotes: config.QuotesConfig{Left: `"`}},
			wantErr: typo.ErrInvalidQuoteStyle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.cfg.QuoteStyle()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_DisabledRules(t *testing.T) {
	t.Parallel()

	on, off := true, false
	cfg := config.NewConfig()
	cfg.Rules["TY12"] = config.RuleConfig{Enabled: &off}
	cfg.Rules["em-dash"] = config.RuleConfig{Enabled: &off}
	cfg.Rules["TY01"] = config.RuleConfig{Enabled: &on}
	cfg.Rules["TY02"] = config.RuleConfig{}
	cfg.DisableRules = []string{"TY12", "TY28"}

	assert.Equal(t, []string{"TY12", "TY28", "em-dash"}, cfg.DisabledRules())
}

func TestConfig_CorrectorOptions(t *testing.T) {
	t.Parallel()

	off := false
	cfg := config.NewConfig()
	cfg.Locale = "en"
	cfg.MoveCaret = false
	cfg.MatchTimeout = 2 * time.Second
	cfg.Rules["ellipsis"] = config.RuleConfig{Enabled: &off}

	opts, err := cfg.CorrectorOptions()
	require.NoError(t, err)
	assert.Equal(t, typo.EnglishQuotes, opts.Quotes)
	assert.False(t, opts.MoveCaret)
	assert.Equal(t, 2*time.Second, opts.MatchTimeout)
	assert.Equal(t, []string{"ellipsis"}, opts.Disable)

	cfg.Locale = "xx"
	_, err = cfg.CorrectorOptions()
	require.ErrorIs(t, err, typo.ErrUnknownLocale)
	assert.Contains(t, err.Error(), "quotes:")
}

func TestRuleFormat_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.RuleFormatName.IsValid())
	assert.True(t, config.RuleFormatID.IsValid())
	assert.True(t, config.RuleFormatCombined.IsValid())
	assert.False(t, config.RuleFormat("").IsValid())
	assert.False(t, config.RuleFormat("short").IsValid())
}

func TestFormatRuleID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   config.RuleFormat
		ruleID   string
		ruleName string
		want     string
	}{
		{"name format", config.RuleFormatName, "TY04", "em-dash", "em-dash"},
		{"id format", config.RuleFormatID, "TY04", "em-dash", "TY04"},
		{"combined format", config.RuleFormatCombined, "TY04", "em-dash", "TY04/em-dash"},
		{"name format empty name", config.RuleFormatName, "TY04", "", "TY04"},
		{"default to name", config.RuleFormat(""), "TY04", "em-dash", "em-dash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, config.FormatRuleID(tt.format, tt.ruleID, tt.ruleName))
		})
	}
}
