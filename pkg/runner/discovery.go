package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover finds the files selected by opts.
// It returns a sorted, de-duplicated list of absolute paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	d := &discoverer{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		excludes:   opts.ExcludeGlobs,
		follow:     opts.FollowSymlinks,
		seen:       make(map[string]struct{}),
	}

	for _, input := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := input
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if info.IsDir() {
			if err := d.walk(ctx, absPath); err != nil {
				return nil, err
			}
			continue
		}

		if d.selects(absPath) {
			d.add(absPath)
		}
	}

	slices.Sort(d.files)
	return d.files, nil
}

// RelPath returns path relative to workDir, or path itself when it lies elsewhere.
func RelPath(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

type discoverer struct {
	workDir    string
	extensions []string
	excludes   []string
	follow     bool
	seen       map[string]struct{}
	files      []string
}

func (d *discoverer) add(path string) {
	if _, ok := d.seen[path]; ok {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

func (d *discoverer) walk(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path == root {
				return nil
			}
			if isHidden(entry.Name()) || d.excluded(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if isHidden(entry.Name()) {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return d.visitSymlink(ctx, path)
		}

		if d.selects(path) {
			d.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// visitSymlink adds a file symlink that matches, and descends into a
// directory symlink when following is enabled. Broken links are ignored.
func (d *discoverer) visitSymlink(ctx context.Context, path string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // broken symlink
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // unreadable target
	}

	if !info.IsDir() {
		if d.selects(path) {
			d.add(path)
		}
		return nil
	}

	if !d.follow || d.excluded(path) {
		return nil
	}
	// Walk the target; WalkDir does not follow a symlinked root.
	return d.walk(ctx, target)
}

func (d *discoverer) selects(path string) bool {
	return hasExtension(path, d.extensions) && !d.excluded(path)
}

func (d *discoverer) excluded(path string) bool {
	rel := RelPath(d.workDir, path)
	for _, pattern := range d.excludes {
		if matchGlob(rel, pattern) {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated path against a glob pattern.
// Besides filepath.Match syntax it understands "dir/**", "**/name", and
// "a/**/b". A pattern without a slash also matches the base name.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStar(path, pattern)
	}

	if ok, err := filepath.Match(pattern, path); err == nil && ok {
		return true
	}
	if strings.Contains(pattern, "/") {
		return false
	}
	ok, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && ok
}

func matchDoubleStar(path, pattern string) bool {
	prefix, suffix, _ := strings.Cut(pattern, "**")
	prefix = strings.TrimSuffix(prefix, "/")
	suffix = strings.TrimPrefix(suffix, "/")

	if prefix != "" && path != prefix && !strings.HasPrefix(path, prefix+"/") {
		return false
	}
	if suffix == "" {
		return true
	}

	rest := strings.TrimPrefix(strings.TrimPrefix(path, prefix), "/")
	parts := strings.Split(rest, "/")
	for i := range parts {
		tail := strings.Join(parts[i:], "/")
		if ok, err := filepath.Match(suffix, tail); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(suffix, parts[i]); err == nil && ok {
			return true
		}
	}
	return false
}
