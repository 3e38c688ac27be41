package cli

import (
	"errors"

	"github.com/yaklabco/typograf/pkg/runner"
)

// Exit codes for typograf.
const (
	// ExitSuccess indicates successful execution with nothing left to correct.
	ExitSuccess = 0

	// ExitChanges indicates files need correction.
	ExitChanges = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors that map to exit codes.
var (
	// ErrChangesFound is returned by check when files need correction.
	ErrChangesFound = errors.New("files need correction")

	// ErrFilesFailed is returned by check when files could not be read.
	ErrFilesFailed = errors.New("some files could not be processed")

	// ErrInvalidUsage wraps flag and argument errors.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig wraps configuration loading failures.
	ErrConfig = errors.New("configuration error")
)

// ExitCodeFromResult determines the exit code of a check run. Read errors
// take precedence over pending corrections.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasErrors() {
		return ExitIOError
	}

	if result.HasChanges() {
		return ExitChanges
	}

	return ExitSuccess
}

// ExitCodeFromError maps a command error to an exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrChangesFound):
		return ExitChanges
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrFilesFailed):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// errorForExitCode returns the sentinel error for a non-success exit code.
func errorForExitCode(code int) error {
	switch code {
	case ExitChanges:
		return ErrChangesFound
	case ExitIOError:
		return ErrFilesFailed
	default:
		return nil
	}
}
