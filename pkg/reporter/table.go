package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/yaklabco/typograf/internal/ui/pretty"
	"github.com/yaklabco/typograf/pkg/runner"
)

// TableReporter formats the rules applied per file as an aligned table.
type TableReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)

	return &TableReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, TerminalWidth(opts.Writer)),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	if !result.HasChanges() {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("Typography is clean"))
			fmt.Fprintln(r.bw, r.styles.Dim.Render(pretty.Plural(result.Stats.FilesProcessed, "file", "files")+" checked"))
		}
		return 0, nil
	}

	fmt.Fprint(r.bw, r.formatter.FormatTable(result, r.opts.RuleFormat))

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, r.formatter.FormatTableSummary(result.Stats, ""))
		if result.Stats.FilesChanged > 0 {
			fmt.Fprintln(r.bw)
			fmt.Fprintln(r.bw, r.styles.Dim.Render("Run with --format diff to see the corrections"))
		}
	}

	return changedFiles(result), nil
}

// TerminalWidth returns the width of the terminal behind writer, or a
// default when writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100
