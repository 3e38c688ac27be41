package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Configuration fields.
	FieldLocale    = "locale"
	FieldQuotes    = "quotes"
	FieldMoveCaret = "move_caret"
	FieldDisabled  = "disabled"
	FieldJobs      = "jobs"

	// Correction fields.
	FieldRule    = "rule"
	FieldStage   = "stage"
	FieldMatches = "matches"
	FieldDelta   = "delta"
	FieldCaret   = "caret"
	FieldReason  = "reason"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesChanged    = "files_changed"
	FieldFilesSkipped    = "files_skipped"
	FieldRulesApplied    = "rules_applied"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
