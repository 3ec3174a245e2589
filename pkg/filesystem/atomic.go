package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jonas-elhs/metemplate/pkg/types"
)

// AtomicWrite writes data to a temporary sibling of path and renames it over
// path. Either the full content lands at path or path is left untouched.
func AtomicWrite(fsys types.FS, path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := fsys.WriteFile(tmpPath, data, perm); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := fsys.Rename(tmpPath, path); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Exists reports whether path exists. Errors other than fs.ErrNotExist are
// returned to the caller.
func Exists(fsys types.FS, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
