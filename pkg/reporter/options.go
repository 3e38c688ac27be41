package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/typograf/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Verbose also lists unchanged and skipped files (text format).
	Verbose bool

	// Compact uses minified JSON.
	Compact bool

	// IncludeContent adds the corrected content of changed files to JSON output.
	IncludeContent bool

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat config.RuleFormat
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowSummary: true,
		RuleFormat:  config.RuleFormatName,
	}
}
