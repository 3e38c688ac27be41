package pretty

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/typograf/pkg/config"
	"github.com/yaklabco/typograf/pkg/runner"
	"github.com/yaklabco/typograf/pkg/textdiff"
	"github.com/yaklabco/typograf/pkg/typo"
)

// FormatOutcome formats one file result: a header line with the status,
// followed by one line per rule that fired.
func (s *Styles) FormatOutcome(o *runner.FileOutcome, ruleFormat config.RuleFormat) string {
	var builder strings.Builder

	builder.WriteString(s.FilePath.Render(o.RelPath))
	builder.WriteString("  ")
	builder.WriteString(s.FormatStatus(o))
	builder.WriteString("\n")

	for _, app := range o.Applied {
		builder.WriteString("    ")
		builder.WriteString(s.FormatApplication(app, ruleFormat))
		builder.WriteString("\n")
	}

	for _, id := range slices.Sorted(maps.Keys(o.RuleErrors)) {
		builder.WriteString("    " + s.Warning.Render("rule "+id+" failed:") + " " +
			s.Message.Render(o.RuleErrors[id].Error()) + "\n")
	}

	return builder.String()
}

// FormatStatus returns a styled one-word status for a file outcome.
func (s *Styles) FormatStatus(o *runner.FileOutcome) string {
	switch {
	case o.Error != nil:
		return s.Error.Render("error") + " " + s.Message.Render(o.Error.Error())
	case o.Skipped:
		return s.Skipped.Render("skipped (" + o.Reason + ")")
	case o.Changed():
		return s.Changed.Render("needs correction") + s.Dim.Render(fmt.Sprintf(" (%s)", Plural(o.Matches(), "fix", "fixes")))
	default:
		return s.Dim.Render("ok")
	}
}

// FormatApplication formats a single rule application, e.g. "ellipsis ×2  (typographify)".
func (s *Styles) FormatApplication(app typo.Application, ruleFormat config.RuleFormat) string {
	rule := config.FormatRuleID(ruleFormat, app.RuleID, app.RuleName)
	return fmt.Sprintf("%s %s  %s",
		s.Message.Render(rule),
		s.Count.Render(fmt.Sprintf("×%d", app.Matches)),
		s.RuleID.Render("("+app.Stage+")"),
	)
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, fixes int) string {
	header := s.FilePath.Render(path)
	if fixes > 0 {
		header += s.Dim.Render(" (" + Plural(fixes, "fix", "fixes") + ")")
	}
	return header
}

// FormatInline renders before and after with the rewritten glyphs highlighted.
// Unchanged text keeps the base style.
func (s *Styles) FormatInline(before, after string, base lipgloss.Style) (string, string) {
	var removed, added strings.Builder

	for _, span := range textdiff.Inline(before, after) {
		switch span.Kind {
		case textdiff.SpanEqual:
			removed.WriteString(base.Render(span.Text))
			added.WriteString(base.Render(span.Text))
		case textdiff.SpanDelete:
			removed.WriteString(s.InlineRemove.Render(span.Text))
		case textdiff.SpanInsert:
			added.WriteString(s.InlineAdd.Render(span.Text))
		}
	}

	return removed.String(), added.String()
}

// Plural formats a count with the singular or plural noun.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
