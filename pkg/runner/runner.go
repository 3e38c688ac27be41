package runner

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/yaklabco/typograf/internal/logging"
	"github.com/yaklabco/typograf/pkg/fsutil"
	"github.com/yaklabco/typograf/pkg/langdetect"
	"github.com/yaklabco/typograf/pkg/markdown"
	"github.com/yaklabco/typograf/pkg/typograf"
)

// Runner corrects files with a shared Corrector.
type Runner struct {
	// Corrector performs the correction passes.
	Corrector *typograf.Corrector

	splitter *markdown.Splitter
}

// New creates a Runner. A nil corrector uses typograf.Default().
func New(corrector *typograf.Corrector) *Runner {
	if corrector == nil {
		corrector = typograf.Default()
	}
	return &Runner{
		Corrector: corrector,
		splitter:  markdown.NewSplitter(),
	}
}

// Run discovers files under opts.Paths and corrects them concurrently.
// Outcomes are ordered by path regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	opts.WorkingDir = workDir

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldFilesSkipped, result.Stats.FilesSkipped,
		logging.FieldRulesApplied, result.Stats.Matches,
	)

	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		outcome := r.ProcessFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// ProcessFile reads, classifies, and corrects a single file. The file on
// disk is never modified.
func (r *Runner) ProcessFile(ctx context.Context, path string, opts Options) FileOutcome {
	logger := logging.FromContext(ctx)
	outcome := FileOutcome{
		Path:    path,
		RelPath: RelPath(opts.WorkingDir, path),
	}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fsutil.ErrNotText) {
			return skip(ctx, outcome, "not text")
		}
		outcome.Error = err
		logger.Warn("read failed", logging.FieldPath, outcome.RelPath, logging.FieldError, err)
		return outcome
	}
	outcome.Original = content

	outcome.Class = langdetect.Classify(classifyPath(outcome.RelPath), content)
	if !outcome.Class.Correctable() {
		return skip(ctx, outcome, outcome.Class.Reason())
	}

	segs := markdown.Whole(content)
	if opts.SkipCode && isMarkdown(path, outcome.Class) {
		segs, err = r.splitter.Segments(ctx, content)
		if err != nil {
			outcome.Error = err
			return outcome
		}
	}

	outcome.Corrected = markdown.Rewrite(content, segs, func(text string) string {
		res := r.Corrector.Correct(text, 0)
		outcome.Applied = mergeApplied(outcome.Applied, res.Applied)
		if res.HasErrors() {
			if outcome.RuleErrors == nil {
				outcome.RuleErrors = make(map[string]error)
			}
			maps.Copy(outcome.RuleErrors, res.RuleErrors)
		}
		return res.Text
	})

	for id, ruleErr := range outcome.RuleErrors {
		logger.Warn("rule failed", logging.FieldPath, outcome.RelPath, logging.FieldRule, id, logging.FieldError, ruleErr)
	}

	if !outcome.Changed() {
		return outcome
	}

	// A diff against content that is no longer on disk would be misleading.
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	if modified {
		return skip(ctx, outcome, "modified during check")
	}

	return outcome
}

func skip(ctx context.Context, outcome FileOutcome, reason string) FileOutcome {
	outcome.Skipped = true
	outcome.Reason = reason
	outcome.Corrected = nil
	logging.FromContext(ctx).Debug("skipping file", logging.FieldPath, outcome.RelPath, logging.FieldReason, reason)
	return outcome
}

func isMarkdown(path string, class langdetect.Classification) bool {
	if class.Language == "Markdown" {
		return true
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}

// classifyPath is the path handed to the classifier. Files outside the
// working directory are classified by name alone, so the directories above
// them do not mark them as vendored.
func classifyPath(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Base(rel)
	}
	return rel
}
