package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yaklabco/typograf/internal/cli"
	"github.com/yaklabco/typograf/pkg/runner"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "typograf" {
		t.Errorf("expected Use to be 'typograf', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	expectedSubcommands := []string{"correct", "check", "rules", "init", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()

	tests := map[string][]string{
		"check": {
			"format", "jobs", "ignore", "extensions",
			"include-code", "follow-symlinks", "verbose", "compact", "content",
			"rule-format", "locale", "left", "right", "disable", "no-caret",
		},
		"correct": {
			"caret", "format", "trace", "rule-format",
			"locale", "left", "right", "disable", "no-caret",
		},
		"rules": {"format", "rule-format", "stage"},
		"init":  {"force", "full", "format", "output"},
	}

	for name, flags := range tests {
		cmd := cli.NewRootCommand(testInfo())
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Fatalf("%s command not found: %v", name, err)
		}

		for _, flagName := range flags {
			if subCmd.Flags().Lookup(flagName) == nil {
				t.Errorf("expected flag %q to exist on %s command", flagName, name)
			}
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, flagName := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2024-01-01",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	for _, want := range []string{"typograf", "1.2.3", "abc123", "2024-01-01"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("version output %q does not contain %q", out.String(), want)
		}
	}
}

func TestCheckCommandAcceptsArbitraryArgs(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	checkCmd, _, err := cmd.Find([]string{"check"})
	if err != nil {
		t.Fatalf("check command not found: %v", err)
	}

	err = checkCmd.Args(checkCmd, []string{"file1.md", "file2.md", "docs/"})
	if err != nil {
		t.Errorf("check command should accept arbitrary args, got error: %v", err)
	}
}

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "changes", err: cli.ErrChangesFound, want: cli.ExitChanges},
		{name: "wrapped usage", err: fmt.Errorf("%w: bad flag", cli.ErrInvalidUsage), want: cli.ExitInvalidUsage},
		{name: "config", err: fmt.Errorf("%w: broken", cli.ErrConfig), want: cli.ExitConfigError},
		{name: "files failed", err: cli.ErrFilesFailed, want: cli.ExitIOError},
		{name: "other", err: errors.New("boom"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCodeFromError(tt.err); got != tt.want {
				t.Errorf("ExitCodeFromError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	changed := &runner.Result{Stats: runner.Stats{FilesChanged: 1}}
	errored := &runner.Result{Stats: runner.Stats{FilesChanged: 1, FilesErrored: 1}}
	clean := &runner.Result{}

	tests := []struct {
		name   string
		result *runner.Result
		want   int
	}{
		{name: "nil result", result: nil, want: cli.ExitSuccess},
		{name: "clean", result: clean, want: cli.ExitSuccess},
		{name: "changes", result: changed, want: cli.ExitChanges},
		{name: "errors win", result: errored, want: cli.ExitIOError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCodeFromResult(tt.result); got != tt.want {
				t.Errorf("ExitCodeFromResult() = %d, want %d", got, tt.want)
			}
		})
	}
}
