// Package main is the entry point for the typograf CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/typograf/internal/cli"
	"github.com/yaklabco/typograf/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, cli.ErrChangesFound) {
		// ErrChangesFound only selects the exit code; the report already said it.
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCodeFromError(err)
}
