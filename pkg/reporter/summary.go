package reporter

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/typograf/internal/ui/pretty"
	"github.com/yaklabco/typograf/pkg/runner"
)

// Layout of the per-file table in summary output.
const (
	fileColWidth      = 60
	numColWidth       = 7
	maxFilePathLength = 58
	maxSummaryFiles   = 20
)

// SummaryReporter prints aggregate statistics: the files with the most
// fixes followed by the per-rule breakdown.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		result = &runner.Result{}
	}

	r.renderFileTable(result)
	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats, r.opts.RuleFormat))

	return changedFiles(result), nil
}

// renderFileTable lists changed files by fix count, most first.
func (r *SummaryReporter) renderFileTable(result *runner.Result) {
	var files []*runner.FileOutcome
	for i := range result.Files {
		if result.Files[i].Changed() {
			files = append(files, &result.Files[i])
		}
	}
	if len(files) == 0 {
		return
	}

	slices.SortStableFunc(files, func(a, b *runner.FileOutcome) int {
		return cmp.Compare(b.Matches(), a.Matches())
	})

	width := fileColWidth + 1 + numColWidth
	fmt.Fprintln(r.bw, r.styles.Bold.Render("Files"))
	fmt.Fprintln(r.bw, r.styles.TableSeparator.Render(strings.Repeat("─", width)))
	fmt.Fprintf(r.bw, "%s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Fixes", numColWidth)),
	)
	fmt.Fprintln(r.bw, r.styles.TableSeparator.Render(strings.Repeat("─", width)))

	for i, file := range files {
		if i == maxSummaryFiles {
			fmt.Fprintln(r.bw, r.styles.Dim.Render(fmt.Sprintf("... and %d more", len(files)-maxSummaryFiles)))
			break
		}
		path := file.RelPath
		if runes := []rune(path); len(runes) > maxFilePathLength {
			path = "…" + string(runes[len(runes)-maxFilePathLength+1:])
		}
		fmt.Fprintf(r.bw, "%s %s\n",
			r.styles.FilePath.Render(padRight(path, fileColWidth)),
			r.styles.Count.Render(padLeft(strconv.Itoa(file.Matches()), numColWidth)),
		)
	}
}

// padRight pads a string to the given width in runes.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// padLeft pads a string to the given width in runes.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}
