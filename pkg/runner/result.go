package runner

import (
	"bytes"
	"maps"
	"slices"

	"github.com/yaklabco/typograf/pkg/langdetect"
	"github.com/yaklabco/typograf/pkg/typo"
)

// FileOutcome is the result of correcting one file.
type FileOutcome struct {
	// Path is the absolute file path.
	Path string

	// RelPath is Path relative to the working directory, for display.
	RelPath string

	// Class is the go-enry classification of the file.
	Class langdetect.Classification

	// Original is the content as read.
	Original []byte

	// Corrected is the content after correction. Equal to Original when
	// nothing changed; nil when the file was skipped or failed.
	Corrected []byte

	// Applied lists the rules that fired, merged across segments.
	Applied []typo.Application

	// RuleErrors maps rule IDs to errors from rules that failed.
	RuleErrors map[string]error

	// Skipped is true when the file was not corrected; Reason says why.
	Skipped bool
	Reason  string

	// Error is set if the file could not be processed.
	Error error
}

// Changed reports whether correction altered the content.
func (o *FileOutcome) Changed() bool {
	if o.Skipped || o.Error != nil || o.Corrected == nil {
		return false
	}
	return !bytes.Equal(o.Original, o.Corrected)
}

// Matches returns the total number of rule matches in the file.
func (o *FileOutcome) Matches() int {
	total := 0
	for _, app := range o.Applied {
		total += app.Matches
	}
	return total
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesChanged    int
	FilesSkipped    int
	FilesErrored    int

	// Matches is the total number of rule matches across all files.
	Matches int

	// RulesApplied maps rule IDs to their match counts.
	RulesApplied map[string]int

	// RuleNames maps rule IDs to rule names for the rules in RulesApplied.
	RuleNames map[string]string

	// RuleErrors counts rule failures across all files.
	RuleErrors int
}

// RuleIDs returns the IDs in RulesApplied, sorted.
func (s *Stats) RuleIDs() []string {
	return slices.Sorted(maps.Keys(s.RulesApplied))
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per discovered file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasChanges reports whether any file needs correction.
func (r *Result) HasChanges() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesChanged > 0
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

func newStats() Stats {
	return Stats{
		RulesApplied: make(map[string]int),
		RuleNames:    make(map[string]string),
	}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
		return
	case outcome.Skipped:
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.RuleErrors += len(outcome.RuleErrors)

	if outcome.Changed() {
		r.Stats.FilesChanged++
	}

	for _, app := range outcome.Applied {
		r.Stats.Matches += app.Matches
		r.Stats.RulesApplied[app.RuleID] += app.Matches
		r.Stats.RuleNames[app.RuleID] = app.RuleName
	}
}

// mergeApplied folds src into dst, summing matches and deltas of the same
// rule. First-seen order is kept.
func mergeApplied(dst, src []typo.Application) []typo.Application {
	for _, app := range src {
		idx := slices.IndexFunc(dst, func(a typo.Application) bool {
			return a.RuleID == app.RuleID
		})
		if idx < 0 {
			dst = append(dst, app)
			continue
		}
		dst[idx].Matches += app.Matches
		dst[idx].Delta += app.Delta
	}
	return dst
}
