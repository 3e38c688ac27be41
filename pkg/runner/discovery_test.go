package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/yaklabco/typograf/pkg/runner"
)

// createFiles creates each relative path under dir with fixed content.
func createFiles(t *testing.T, dir string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(dir, p)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte("content\n"), 0o644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

func joinAll(dir string, paths ...string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Join(dir, p)
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		files    []string
		paths    []string
		exts     []string
		excludes []string
		want     []string
	}{
		{
			name:  "single file",
			files: []string{"readme.md"},
			paths: []string{"readme.md"},
			want:  []string{"readme.md"},
		},
		{
			name:  "directory with default extensions",
			files: []string{"readme.md", "docs/guide.md", "docs/api.markdown", "notes.txt", "src/main.go"},
			paths: []string{"."},
			want:  []string{"docs/api.markdown", "docs/guide.md", "notes.txt", "readme.md"},
		},
		{
			name:  "defaults to working directory",
			files: []string{"test.md"},
			want:  []string{"test.md"},
		},
		{
			name:  "custom extensions",
			files: []string{"a.md", "a.mdx", "a.TXT", "a.rst"},
			paths: []string{"."},
			exts:  []string{".mdx", ".txt"},
			want:  []string{"a.TXT", "a.mdx"},
		},
		{
			name:     "exclude directories",
			files:    []string{"readme.md", "vendor/pkg/doc.md", "node_modules/lib/readme.md", "docs/guide.md"},
			paths:    []string{"."},
			excludes: []string{"vendor/**", "node_modules"},
			want:     []string{"docs/guide.md", "readme.md"},
		},
		{
			name:     "exclude by base name",
			files:    []string{"CHANGELOG.md", "docs/CHANGELOG.md", "docs/intro.md"},
			paths:    []string{"."},
			excludes: []string{"CHANGELOG.md"},
			want:     []string{"docs/intro.md"},
		},
		{
			name:     "exclude anywhere",
			files:    []string{"a/build/out.md", "b/c/build/x.md", "b/keep.md"},
			paths:    []string{"."},
			excludes: []string{"**/build"},
			want:     []string{"b/keep.md"},
		},
		{
			name:  "hidden files and directories",
			files: []string{"visible.md", ".hidden.md", ".git/notes.md", "docs/.draft/x.md"},
			paths: []string{"."},
			want:  []string{"visible.md"},
		},
		{
			name:  "explicit file must match extensions",
			files: []string{"main.go"},
			paths: []string{"main.go"},
			want:  nil,
		},
		{
			name:  "duplicates collapse",
			files: []string{"readme.md", "docs/guide.md"},
			paths: []string{".", "readme.md", "docs", "docs/guide.md"},
			want:  []string{"docs/guide.md", "readme.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			createFiles(t, dir, tt.files...)

			got, err := runner.Discover(context.Background(), runner.Options{
				Paths:        tt.paths,
				WorkingDir:   dir,
				Extensions:   tt.exts,
				ExcludeGlobs: tt.excludes,
			})
			if err != nil {
				t.Fatalf("Discover() error = %v", err)
			}

			want := joinAll(dir, tt.want...)
			if !slices.Equal(got, want) {
				t.Errorf("Discover() = %v, want %v", got, want)
			}
		})
	}
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"missing"},
		WorkingDir: t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	createFiles(t, dir, "a.md")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: dir})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestDiscover_Symlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outside := t.TempDir()
	createFiles(t, dir, "real.md")
	createFiles(t, outside, "linked/inner.md")

	if err := os.Symlink(filepath.Join(dir, "real.md"), filepath.Join(dir, "alias.md")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(filepath.Join(outside, "linked"), filepath.Join(dir, "linked")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "gone.md"), filepath.Join(dir, "broken.md")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	want := joinAll(dir, "alias.md", "real.md")
	if !slices.Equal(got, want) {
		t.Errorf("without follow: got %v, want %v", got, want)
	}

	got, err = runner.Discover(context.Background(), runner.Options{WorkingDir: dir, FollowSymlinks: true})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if !slices.Contains(got, filepath.Join(outside, "linked", "inner.md")) {
		t.Errorf("with follow: %v does not contain the linked file", got)
	}
}

func TestRelPath(t *testing.T) {
	t.Parallel()

	base := filepath.Join(string(filepath.Separator), "work")

	if got := runner.RelPath(base, filepath.Join(base, "docs", "a.md")); got != filepath.Join("docs", "a.md") {
		t.Errorf("RelPath() inside = %q", got)
	}

	elsewhere := filepath.Join(string(filepath.Separator), "other", "a.md")
	if got := runner.RelPath(base, elsewhere); got != elsewhere {
		t.Errorf("RelPath() outside = %q, want %q", got, elsewhere)
	}
}
