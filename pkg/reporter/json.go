package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/yaklabco/typograf/pkg/runner"
)

// jsonVersion is the schema version of JSON output.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path       string            `json:"path"`
	Language   string            `json:"language,omitempty"`
	Changed    bool              `json:"changed"`
	Skipped    bool              `json:"skipped,omitempty"`
	Reason     string            `json:"reason,omitempty"`
	Error      string            `json:"error,omitempty"`
	Applied    []JSONApplication `json:"applied"`
	RuleErrors map[string]string `json:"ruleErrors,omitempty"`
	Corrected  string            `json:"corrected,omitempty"`
}

// JSONApplication represents one rule that fired.
type JSONApplication struct {
	RuleID   string `json:"ruleId"`
	RuleName string `json:"ruleName"`
	Stage    string `json:"stage"`
	Matches  int    `json:"matches"`
	Delta    int    `json:"delta"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked int            `json:"filesChecked"`
	FilesChanged int            `json:"filesChanged"`
	FilesSkipped int            `json:"filesSkipped"`
	FilesErrored int            `json:"filesErrored"`
	TotalFixes   int            `json:"totalFixes"`
	ByRule       map[string]int `json:"byRule"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesChanged, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{ByRule: make(map[string]int)},
	}

	if result == nil {
		return output
	}

	for i := range result.Files {
		file := &result.Files[i]
		fileResult := JSONFileResult{
			Path:     file.RelPath,
			Language: file.Class.Language,
			Changed:  file.Changed(),
			Skipped:  file.Skipped,
			Reason:   file.Reason,
			Applied:  make([]JSONApplication, 0, len(file.Applied)),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		for _, app := range file.Applied {
			fileResult.Applied = append(fileResult.Applied, JSONApplication{
				RuleID:   app.RuleID,
				RuleName: app.RuleName,
				Stage:    app.Stage,
				Matches:  app.Matches,
				Delta:    app.Delta,
			})
		}

		for id, ruleErr := range file.RuleErrors {
			if fileResult.RuleErrors == nil {
				fileResult.RuleErrors = make(map[string]string, len(file.RuleErrors))
			}
			fileResult.RuleErrors[id] = ruleErr.Error()
		}

		if r.opts.IncludeContent && fileResult.Changed {
			fileResult.Corrected = string(file.Corrected)
		}

		output.Files = append(output.Files, fileResult)
	}

	stats := result.Stats
	output.Summary.FilesChecked = stats.FilesProcessed
	output.Summary.FilesChanged = stats.FilesChanged
	output.Summary.FilesSkipped = stats.FilesSkipped
	output.Summary.FilesErrored = stats.FilesErrored
	output.Summary.TotalFixes = stats.Matches
	maps.Copy(output.Summary.ByRule, stats.RulesApplied)

	return output
}
