package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/typograf/internal/logging"
	"github.com/yaklabco/typograf/pkg/config"
	"github.com/yaklabco/typograf/pkg/reporter"
	"github.com/yaklabco/typograf/pkg/runner"
)

type checkFlags struct {
	corrector      correctorFlags
	format         string
	ignore         []string
	extensions     []string
	jobs           int
	includeCode    bool
	followSymlinks bool
	verbose        bool
	compact        bool
	content        bool
	ruleFormat     string
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report typography corrections for Markdown and text files",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Check files for text that typograf would correct.

By default, checks all .md, .markdown and .txt files in the current directory
and subdirectories. Code spans, code blocks and front matter in Markdown are
left alone, and source code, vendored and generated files are skipped.
Files are never modified. The command exits with status 1 when files need
correction; use --format diff to see the corrected text.

Examples:
  typograf check                    # Check current directory
  typograf check docs/              # Check docs directory
  typograf check README.md          # Check single file
  typograf check --format diff      # Show the corrections as a diff
  typograf check --format table     # Group fixes by file and rule
  typograf check --format json      # Output as JSON for CI`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	ruleFormat := config.RuleFormat(flags.ruleFormat)
	if !ruleFormat.IsValid() {
		return fmt.Errorf("%w: unsupported rule format %q", ErrInvalidUsage, flags.ruleFormat)
	}

	cliCfg := &config.Config{
		Format:     config.OutputFormat(flags.format),
		RuleFormat: ruleFormat,
		Jobs:       flags.jobs,
		Ignore:     flags.ignore,
		Extensions: flags.extensions,
	}
	flags.corrector.apply(cliCfg)

	ctx, cfg, err := loadConfig(cmd, cliCfg, flags.corrector.moveCaret(cmd))
	if err != nil {
		return err
	}
	logger := logging.FromContext(ctx)

	if flags.includeCode {
		cfg.Markdown.SkipCode = false
	}

	corrector, err := newCorrector(cfg)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	runOpts := runner.OptionsFromConfig(cfg)
	runOpts.Paths = args
	runOpts.WorkingDir = workDir
	runOpts.FollowSymlinks = flags.followSymlinks

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	start := time.Now()
	result, err := runner.New(corrector).Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("check run failed: %w", err)
	}
	logger.Debug("check run finished", "elapsed", time.Since(start))

	for i := range result.Files {
		file := &result.Files[i]
		if file.Error != nil {
			logger.Debug("file failed", logging.FieldPath, file.RelPath, logging.FieldError, file.Error)
		}
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:         cmd.OutOrStdout(),
		Format:         format,
		Color:          colorMode,
		ShowSummary:    true,
		Verbose:        flags.verbose,
		Compact:        flags.compact,
		IncludeContent: flags.content,
		RuleFormat:     cfg.RuleFormat,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	return errorForExitCode(ExitCodeFromResult(result))
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	addCorrectorFlags(cmd, &flags.corrector)
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, diff, summary")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil, "file extensions to check (default .md,.markdown,.txt)")
	cmd.Flags().BoolVar(&flags.includeCode, "include-code", false, "also correct code spans and blocks in Markdown")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow symbolic links to directories")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list unchanged and skipped files too")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVar(&flags.content, "content", false, "include corrected content in JSON output")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
}
