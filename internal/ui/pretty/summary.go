package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/typograf/pkg/config"
	"github.com/yaklabco/typograf/pkg/runner"
)

const summaryDividerWidth = 40

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "5 fixes in 2 files, 1 skipped".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesChanged == 0 {
		msg := s.Success.Render("Typography is clean") +
			s.Dim.Render(fmt.Sprintf(" (%s checked)", Plural(stats.FilesProcessed, "file", "files")))
		return msg + s.skippedErrored(stats) + "\n"
	}

	msg := fmt.Sprintf("%s in %s",
		s.Changed.Render(Plural(stats.Matches, "fix", "fixes")),
		Plural(stats.FilesChanged, "file", "files"))

	return msg + s.skippedErrored(stats) + "\n"
}

func (s *Styles) skippedErrored(stats runner.Stats) string {
	var out string
	if stats.FilesSkipped > 0 {
		out += ", " + s.Skipped.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped))
	}
	if stats.FilesErrored > 0 {
		out += ", " + s.Error.Render(Plural(stats.FilesErrored, "error", "errors"))
	}
	return out
}

// FormatSummary formats run statistics as a summary block with a per-rule breakdown.
func (s *Styles) FormatSummary(stats runner.Stats, ruleFormat config.RuleFormat) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row := func(label string, value string) {
		fmt.Fprintf(&builder, "  %-19s%s\n", label+":", value)
	}

	row("Files checked", s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)))
	if stats.FilesChanged > 0 {
		row("Files to correct", s.Changed.Render(strconv.Itoa(stats.FilesChanged)))
	}
	if stats.FilesSkipped > 0 {
		row("Files skipped", s.Skipped.Render(strconv.Itoa(stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		row("Files with errors", s.Error.Render(strconv.Itoa(stats.FilesErrored)))
	}

	builder.WriteString("\n")
	row("Total fixes", s.SummaryValue.Render(strconv.Itoa(stats.Matches)))

	for _, id := range stats.RuleIDs() {
		rule := config.FormatRuleID(ruleFormat, id, stats.RuleNames[id])
		fmt.Fprintf(&builder, "    %-17s%s\n", rule+":", s.Count.Render(strconv.Itoa(stats.RulesApplied[id])))
	}

	if stats.RuleErrors > 0 {
		row("Rule failures", s.Warning.Render(strconv.Itoa(stats.RuleErrors)))
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Correction failed for some files"))
	case stats.FilesChanged > 0:
		builder.WriteString(s.Warning.Render("Typography needs correction"))
	default:
		builder.WriteString(s.Success.Render("Typography is clean"))
	}
	builder.WriteString("\n")

	return builder.String()
}
