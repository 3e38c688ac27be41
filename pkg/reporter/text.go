package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/typograf/internal/ui/pretty"
	"github.com/yaklabco/typograf/pkg/runner"
)

// TextReporter lists the files that need correction and the rules that fired.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
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

	for i := range result.Files {
		file := &result.Files[i]
		if !r.shouldList(file) {
			continue
		}
		fmt.Fprint(r.bw, r.styles.FormatOutcome(file, r.opts.RuleFormat))
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return changedFiles(result), nil
}

func (r *TextReporter) shouldList(file *runner.FileOutcome) bool {
	if r.opts.Verbose {
		return true
	}
	return file.Error != nil || file.Changed() || len(file.RuleErrors) > 0
}
