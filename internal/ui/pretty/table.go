package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/typograf/pkg/config"
	"github.com/yaklabco/typograf/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minFileWidth     = 20
	minRuleWidth     = 12
	minStageWidth    = 12
	fixesWidth       = 5
	minDescWidth     = 30
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow is one rule application in one file.
type TableRow struct {
	File  string
	Rule  string
	Stage string
	Fixes int
}

// RuleRow describes a rule for the rules listing.
type RuleRow struct {
	ID          string
	Name        string
	Stage       string
	Description string
}

// TableFormatter formats run results and rule listings as aligned tables.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

type columnWidths struct {
	file  int
	rule  int
	stage int
}

func (w columnWidths) total() int {
	return w.file + w.rule + w.stage + fixesWidth + tablePadding*4
}

// FormatTable formats the rule applications of every changed file, grouped by file.
func (t *TableFormatter) FormatTable(result *runner.Result, ruleFormat config.RuleFormat) string {
	if result == nil {
		return ""
	}

	groups := collectRows(result, ruleFormat)
	if len(groups) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(groups)

	var builder strings.Builder

	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %*s ",
		widths.file, "FILE",
		widths.rule, "RULE",
		widths.stage, "STAGE",
		fixesWidth, "FIXES",
	)
	builder.WriteString(t.styles.TableHeader.Render(header) + "\n")
	builder.WriteString(t.separator(widths.total(), heavySeparator) + "\n")

	for i, group := range groups {
		if i > 0 {
			builder.WriteString(t.separator(widths.total(), lightSeparator) + "\n")
		}
		for j, row := range group {
			file := ""
			if j == 0 {
				file = truncateFilePath(row.File, widths.file)
			}
			fmt.Fprintf(&builder, " %s  %s  %s  %s \n",
				t.styles.FilePath.Render(padRight(file, widths.file)),
				padRight(truncateString(row.Rule, widths.rule), widths.rule),
				t.styles.TableStage.Render(padRight(row.Stage, widths.stage)),
				t.styles.Count.Render(fmt.Sprintf("%*d", fixesWidth, row.Fixes)),
			)
		}
	}

	builder.WriteString(t.separator(widths.total(), heavySeparator) + "\n")

	return builder.String()
}

// FormatTableSummary formats a one-line footer for the table.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats, duration string) string {
	parts := []string{Plural(stats.FilesProcessed, "file", "files") + " checked"}

	if stats.FilesChanged > 0 {
		parts = append(parts, t.styles.Changed.Render(Plural(stats.FilesChanged, "file", "files")+" to correct"))
	}
	if stats.Matches > 0 {
		parts = append(parts, t.styles.Count.Render(Plural(stats.Matches, "fix", "fixes")))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, t.styles.Skipped.Render(strconv.Itoa(stats.FilesSkipped)+" skipped"))
	}
	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}

// FormatRules formats a rule listing, one rule per row in pass order.
// Descriptions are truncated to fit the terminal width.
func (t *TableFormatter) FormatRules(rows []RuleRow) string {
	if len(rows) == 0 {
		return ""
	}

	idWidth, nameWidth, stageWidth := len("ID"), len("NAME"), len("STAGE")
	for _, row := range rows {
		idWidth = max(idWidth, utf8.RuneCountInString(row.ID))
		nameWidth = max(nameWidth, utf8.RuneCountInString(row.Name))
		stageWidth = max(stageWidth, utf8.RuneCountInString(row.Stage))
	}
	fixed := idWidth + nameWidth + stageWidth + tablePadding*4
	descWidth := max(minDescWidth, t.termWidth-fixed)

	var builder strings.Builder

	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %s",
		idWidth, "ID", nameWidth, "NAME", stageWidth, "STAGE", "DESCRIPTION")
	builder.WriteString(t.styles.TableHeader.Render(header) + "\n")
	builder.WriteString(t.separator(fixed+descWidth, heavySeparator) + "\n")

	lastStage := ""
	for _, row := range rows {
		if lastStage != "" && row.Stage != lastStage {
			builder.WriteString(t.separator(fixed+descWidth, lightSeparator) + "\n")
		}
		lastStage = row.Stage

		fmt.Fprintf(&builder, " %s  %s  %s  %s\n",
			t.styles.Bold.Render(padRight(row.ID, idWidth)),
			padRight(row.Name, nameWidth),
			t.styles.TableStage.Render(padRight(row.Stage, stageWidth)),
			t.styles.Dim.Render(truncateString(row.Description, descWidth)),
		)
	}

	builder.WriteString(t.separator(fixed+descWidth, heavySeparator) + "\n")
	builder.WriteString(t.styles.TableLegend.Render(fmt.Sprintf(" %s, applied top to bottom", Plural(len(rows), "rule", "rules"))) + "\n")

	return builder.String()
}

func collectRows(result *runner.Result, ruleFormat config.RuleFormat) [][]TableRow {
	var groups [][]TableRow

	for i := range result.Files {
		file := &result.Files[i]
		if !file.Changed() {
			continue
		}

		rows := make([]TableRow, 0, len(file.Applied))
		for _, app := range file.Applied {
			rows = append(rows, TableRow{
				File:  file.RelPath,
				Rule:  config.FormatRuleID(ruleFormat, app.RuleID, app.RuleName),
				Stage: app.Stage,
				Fixes: app.Matches,
			})
		}
		if len(rows) > 0 {
			groups = append(groups, rows)
		}
	}

	return groups
}

func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		file:  minFileWidth,
		rule:  minRuleWidth,
		stage: minStageWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			widths.file = max(widths.file, utf8.RuneCountInString(row.File))
			widths.rule = max(widths.rule, utf8.RuneCountInString(row.Rule))
		}
	}

	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.file = max(minFileWidth, widths.file-excess)
	}

	return widths
}

func (t *TableFormatter) separator(width int, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, width))
}

// padRight pads str with spaces to width runes. Padding happens before
// styling so ANSI sequences do not skew alignment.
func padRight(str string, width int) string {
	n := utf8.RuneCountInString(str)
	if n >= width {
		return str
	}
	return str + strings.Repeat(" ", width-n)
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	runes := []rune(str)
	if len(runes) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	runes := []rune(path)
	if len(runes) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return string(runes[len(runes)-maxLen:])
	}
	return "..." + string(runes[len(runes)-maxLen+3:])
}
