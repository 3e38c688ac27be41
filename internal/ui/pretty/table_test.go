package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/typograf/internal/ui/pretty"
	"github.com/yaklabco/typograf/pkg/config"
	"github.com/yaklabco/typograf/pkg/runner"
	"github.com/yaklabco/typograf/pkg/typo"
)

// rowFields returns the whitespace-separated fields of the first line containing marker.
func rowFields(t *testing.T, out, marker string) []string {
	t.Helper()
	for line := range strings.SplitSeq(out, "\n") {
		if strings.Contains(line, marker) {
			return strings.Fields(line)
		}
	}
	t.Fatalf("no line containing %q in:\n%s", marker, out)
	return nil
}

func TestTableFormatter_FormatTable(t *testing.T) {
	t.Parallel()

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				RelPath:   "a.md",
				Original:  []byte("wait... -- x"),
				Corrected: []byte("wait… — x"),
				Applied: []typo.Application{
					ellipsisApp(2),
					{Stage: typo.StageTypographify, RuleID: "TY04", RuleName: "em-dash", Matches: 1},
				},
			},
			{RelPath: "b.md", Original: []byte("same"), Corrected: []byte("same")},
			{RelPath: "c.go", Skipped: true, Reason: "code (Go)"},
		},
		Stats: runner.Stats{FilesProcessed: 2, FilesChanged: 1, FilesSkipped: 1, Matches: 3},
	}

	tf := pretty.NewTableFormatter(pretty.NewStyles(false), 100)
	out := tf.FormatTable(result, config.RuleFormatID)

	assert.Equal(t, []string{"FILE", "RULE", "STAGE", "FIXES"}, rowFields(t, out, "FILE"))
	assert.Equal(t, []string{"a.md", "TY12", "typographify", "2"}, rowFields(t, out, "TY12"))
	assert.Equal(t, []string{"TY04", "typographify", "1"}, rowFields(t, out, "TY04"))
	assert.NotContains(t, out, "b.md")
	assert.NotContains(t, out, "c.go")
	assert.Equal(t, " 2 files checked | 1 file to correct | 3 fixes | 1 skipped | 12ms",
		tf.FormatTableSummary(result.Stats, "12ms"))
}

func TestTableFormatter_FormatTable_Empty(t *testing.T) {
	t.Parallel()

	tf := pretty.NewTableFormatter(pretty.NewStyles(false), 0)
	assert.Empty(t, tf.FormatTable(nil, config.RuleFormatName))
	assert.Empty(t, tf.FormatTable(&runner.Result{}, config.RuleFormatName))
}

func TestTableFormatter_FormatTable_TruncatesPath(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("nested/", 12) + "file.md"
	result := &runner.Result{
		Files: []runner.FileOutcome{{
			RelPath:   long,
			Original:  []byte("a..."),
			Corrected: []byte("a…"),
			Applied:   []typo.Application{ellipsisApp(1)},
		}},
	}

	out := pretty.NewTableFormatter(pretty.NewStyles(false), 60).FormatTable(result, config.RuleFormatName)
	fields := rowFields(t, out, "ellipsis")
	require.NotEmpty(t, fields)
	assert.True(t, strings.HasPrefix(fields[0], "..."), fields[0])
	assert.True(t, strings.HasSuffix(fields[0], "file.md"), fields[0])
}

func TestTableFormatter_FormatRules(t *testing.T) {
	t.Parallel()

	rows := []pretty.RuleRow{
		{ID: "TN01", Name: "space-collapse", Stage: typo.StageNormalize, Description: "Collapse a run of spaces containing a non-breaking or narrow non-breaking space into one space"},
		{ID: "TY12", Name: "ellipsis", Stage: typo.StageTypographify, Description: "Exactly three dots become an ellipsis"},
	}

	// ID 4 + NAME 14 + STAGE 12 + padding 8 leaves 62 columns for descriptions.
	out := pretty.NewTableFormatter(pretty.NewStyles(false), 100).FormatRules(rows)

	assert.Equal(t, []string{"ID", "NAME", "STAGE", "DESCRIPTION"}, rowFields(t, out, "DESCRIPTION"))
	assert.Equal(t, "TN01", rowFields(t, out, "space-collapse")[0])
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "Exactly three dots become an ellipsis")
	assert.Contains(t, out, strings.Repeat("-", 100))
	assert.Contains(t, out, " 2 rules, applied top to bottom\n")

	assert.Empty(t, pretty.NewTableFormatter(pretty.NewStyles(false), 60).FormatRules(nil))
}
