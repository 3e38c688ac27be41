// Package runner corrects many files concurrently.
package runner

import "github.com/yaklabco/typograf/pkg/config"

// Options controls a multi-file run.
type Options struct {
	// Paths are the files or directories to process.
	// If empty, defaults to the working directory.
	Paths []string

	// WorkingDir resolves relative Paths and anchors ignore patterns.
	// If empty, the process working directory is used.
	WorkingDir string

	// Extensions lists the extensions (with leading dot) picked up when
	// walking directories. Files named explicitly in Paths must match too.
	Extensions []string

	// ExcludeGlobs skip files or whole directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the number of concurrent workers; 0 or negative means runtime.NumCPU().
	Jobs int

	// SkipCode restricts Markdown correction to prose.
	SkipCode bool
}

// OptionsFromConfig derives run options from a resolved configuration.
// Paths and WorkingDir are left for the caller.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		SkipCode:     cfg.Markdown.SkipCode,
	}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
