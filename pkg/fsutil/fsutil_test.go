package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/typograf/pkg/fsutil"
)

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file content and metadata", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "note.md")
		content := []byte("Привет -- мир...")
		writeFile(t, path, content)

		got, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
		if info.Path != path {
			t.Errorf("Path = %q, want %q", info.Path, path)
		}
		if info.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", info.Size, len(content))
		}
		var zeroHash [32]byte
		if info.Hash == zeroHash {
			t.Error("Hash should not be zero")
		}
	})

	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string) string
		wantErr error
	}{
		{
			name:    "missing file",
			setup:   func(_ *testing.T, dir string) string { return filepath.Join(dir, "missing.md") },
			wantErr: fsutil.ErrNotFound,
		},
		{
			name:    "directory",
			setup:   func(_ *testing.T, dir string) string { return dir },
			wantErr: fsutil.ErrIsDirectory,
		},
		{
			name: "binary content",
			setup: func(t *testing.T, dir string) string {
				path := filepath.Join(dir, "blob.txt")
				writeFile(t, path, []byte{'a', 0, 'b'})
				return path
			},
			wantErr: fsutil.ErrNotText,
		},
		{
			name: "invalid utf-8",
			setup: func(t *testing.T, dir string) string {
				path := filepath.Join(dir, "latin1.txt")
				writeFile(t, path, []byte{'c', 0xe9, 'a'})
				return path
			},
			wantErr: fsutil.ErrNotText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := tt.setup(t, t.TempDir())
			_, _, err := fsutil.ReadFile(context.Background(), path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ReadFile() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "whatever.md")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("ReadFile() error = %v, want context.Canceled", err)
		}
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	t.Run("unchanged file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.md")
		writeFile(t, path, []byte("one"))

		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		modified, err := fsutil.CheckModified(context.Background(), info)
		if err != nil {
			t.Fatalf("CheckModified() error = %v", err)
		}
		if modified {
			t.Error("expected unmodified file")
		}
	})

	t.Run("same size edit is caught by hash", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.md")
		writeFile(t, path, []byte("one"))

		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		writeFile(t, path, []byte("two"))
		if err := os.Chtimes(path, info.ModTime, info.ModTime); err != nil {
			t.Fatalf("chtimes: %v", err)
		}

		modified, err := fsutil.CheckModified(context.Background(), info)
		if err != nil {
			t.Fatalf("CheckModified() error = %v", err)
		}
		if !modified {
			t.Error("expected modification to be detected")
		}
	})

	t.Run("deleted file counts as modified", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.md")
		writeFile(t, path, []byte("one"))

		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if err := os.Remove(path); err != nil {
			t.Fatalf("remove: %v", err)
		}

		modified, err := fsutil.CheckModified(context.Background(), info)
		if err != nil || !modified {
			t.Errorf("CheckModified() = %v, %v; want true, nil", modified, err)
		}
	})

	t.Run("nil info", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.CheckModified(context.Background(), nil)
		if !errors.Is(err, fsutil.ErrNilFileInfo) {
			t.Errorf("CheckModified(nil) error = %v", err)
		}
	})
}
