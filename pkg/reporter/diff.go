package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/typograf/internal/ui/pretty"
	"github.com/yaklabco/typograf/pkg/runner"
	"github.com/yaklabco/typograf/pkg/textdiff"
)

// DiffReporter formats results as unified diffs in git style.
// Without color the output is a plain patch that git apply accepts.
type DiffReporter struct {
	opts         Options
	styles       *pretty.Styles
	colorEnabled bool
	bw           *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:         opts,
		styles:       pretty.NewStyles(colorEnabled),
		colorEnabled: colorEnabled,
		bw:           bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var filesWithDiffs, totalAdditions, totalDeletions int

	for i := range result.Files {
		file := &result.Files[i]
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.RelPath),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if !file.Changed() {
			continue
		}

		diff := textdiff.Generate(file.RelPath, file.Original, file.Corrected)
		if !diff.HasChanges() {
			continue
		}

		filesWithDiffs++
		totalAdditions += diff.Additions
		totalDeletions += diff.Deletions
		r.writeDiff(diff)
	}

	if filesWithDiffs > 0 && r.opts.ShowSummary {
		r.writeSummary(filesWithDiffs, totalAdditions, totalDeletions)
	}

	return filesWithDiffs, nil
}

// writeDiff outputs a single file's diff.
func (r *DiffReporter) writeDiff(diff *textdiff.Diff) {
	path := strings.TrimPrefix(diff.Path, "/")
	header := fmt.Sprintf("diff --git a/%s b/%s", path, path)

	if !r.colorEnabled {
		fmt.Fprintln(r.bw, header)
		fmt.Fprint(r.bw, diff.String())
		return
	}

	fmt.Fprintln(r.bw, r.styles.DiffHeader.Render(header))
	fmt.Fprintln(r.bw, r.styles.DiffRemove.Render("--- a/"+path))
	fmt.Fprintln(r.bw, r.styles.DiffAdd.Render("+++ b/"+path))

	for _, hunk := range diff.Hunks {
		fmt.Fprintln(r.bw, r.styles.DiffHunk.Render(hunk.Header()))
		r.writeHunkLines(hunk.Lines)
	}

	fmt.Fprintln(r.bw)
}

// writeHunkLines writes the lines of a hunk. A run of removed lines directly
// followed by the same number of added lines is paired line by line, and the
// rewritten glyphs inside each pair are highlighted.
func (r *DiffReporter) writeHunkLines(lines []textdiff.Line) {
	for i := 0; i < len(lines); {
		line := lines[i]
		if line.Kind != textdiff.LineRemove {
			r.writeLine(line, r.styleFor(line.Kind))
			i++
			continue
		}

		removeEnd := i
		for removeEnd < len(lines) && lines[removeEnd].Kind == textdiff.LineRemove {
			removeEnd++
		}
		addEnd := removeEnd
		for addEnd < len(lines) && lines[addEnd].Kind == textdiff.LineAdd {
			addEnd++
		}

		removed, added := lines[i:removeEnd], lines[removeEnd:addEnd]
		if len(removed) != len(added) {
			for _, l := range lines[i:addEnd] {
				r.writeLine(l, r.styleFor(l.Kind))
			}
			i = addEnd
			continue
		}

		before := make([]string, len(removed))
		after := make([]string, len(added))
		for j := range removed {
			before[j], after[j] = r.styles.FormatInline(removed[j].Content, added[j].Content, lipgloss.NewStyle())
		}
		for _, text := range before {
			fmt.Fprintln(r.bw, r.styles.DiffRemove.Render("-")+text)
		}
		for _, text := range after {
			fmt.Fprintln(r.bw, r.styles.DiffAdd.Render("+")+text)
		}
		i = addEnd
	}
}

func (r *DiffReporter) writeLine(line textdiff.Line, style lipgloss.Style) {
	fmt.Fprintln(r.bw, style.Render(line.Kind.Prefix()+line.Content))
}

func (r *DiffReporter) styleFor(kind textdiff.LineKind) lipgloss.Style {
	switch kind {
	case textdiff.LineAdd:
		return r.styles.DiffAdd
	case textdiff.LineRemove:
		return r.styles.DiffRemove
	default:
		return r.styles.DiffContext
	}
}

// writeSummary writes a summary line at the end.
func (r *DiffReporter) writeSummary(files, additions, deletions int) {
	parts := []string{pretty.Plural(files, "file", "files") + " changed"}

	if additions > 0 {
		parts = append(parts, r.styles.DiffAdd.Render(pretty.Plural(additions, "insertion", "insertions")+"(+)"))
	}
	if deletions > 0 {
		parts = append(parts, r.styles.DiffRemove.Render(pretty.Plural(deletions, "deletion", "deletions")+"(-)"))
	}

	fmt.Fprintln(r.bw, strings.Join(parts, ", "))
}
