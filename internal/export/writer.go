package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ArtifactWriter stores exported files. Paths are relative to the export
// directory chosen by the writer.
type ArtifactWriter interface {
	ReadFile(ctx context.Context, name string) ([]byte, error)
	WriteFile(ctx context.Context, name string, data []byte) error
	// RemoveFile deletes name. A missing file is not an error.
	RemoveFile(ctx context.Context, name string) error
}

// DirWriter writes into a directory on disk. Each file is written to a
// temporary sibling first and renamed into place.
type DirWriter struct {
	Root string
	Perm fs.FileMode
}

// NewDirWriter returns a writer rooted at dir.
func NewDirWriter(dir string) *DirWriter {
	return &DirWriter{Root: dir, Perm: 0o644}
}

// ReadFile returns the current content of name. A missing file returns
// fs.ErrNotExist.
func (w *DirWriter) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(w.Root, filepath.FromSlash(name)))
}

// WriteFile replaces name atomically.
func (w *DirWriter) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := filepath.Join(w.Root, filepath.FromSlash(name))
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: ensure dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("export: create temp for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	cleanup := func(cause error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return cause
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(fmt.Errorf("export: write %s: %w", name, err))
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(fmt.Errorf("export: sync %s: %w", name, err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("export: close %s: %w", name, err)
	}
	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("export: chmod %s: %w", name, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("export: rename %s: %w", name, err)
	}
	return nil
}

// RemoveFile deletes name from the export directory.
func (w *DirWriter) RemoveFile(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(w.Root, filepath.FromSlash(name)))
	if err != nil && !isNotExist(err) {
		return fmt.Errorf("export: remove %s: %w", name, err)
	}
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
