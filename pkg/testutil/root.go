package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jonas-elhs/metemplate/pkg/filesystem"
	"github.com/jonas-elhs/metemplate/pkg/types"
	"github.com/stretchr/testify/require"
)

// MemoryRootPath is the config root used by NewMemoryRoot
const MemoryRootPath = "/config/metemplate"

// ConfigRoot is a config directory on some filesystem
type ConfigRoot struct {
	FS   types.FS
	Root string
}

// NewMemoryRoot creates an empty config root on an in-memory filesystem
func NewMemoryRoot(t *testing.T) *ConfigRoot {
	t.Helper()

	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll(MemoryRootPath, 0755))
	return &ConfigRoot{FS: fsys, Root: MemoryRootPath}
}

// NewTempRoot creates an empty config root in a temporary OS directory
func NewTempRoot(t *testing.T) *ConfigRoot {
	t.Helper()

	root := filepath.Join(t.TempDir(), "metemplate")
	fsys := filesystem.NewOS()
	require.NoError(t, fsys.MkdirAll(root, 0755))
	return &ConfigRoot{FS: fsys, Root: root}
}

// Path joins elements onto the root
func (r *ConfigRoot) Path(elem ...string) string {
	return filepath.Join(append([]string{r.Root}, elem...)...)
}

// WriteFile writes content to path, creating parent directories
func (r *ConfigRoot) WriteFile(t *testing.T, path, content string) {
	t.Helper()
	WriteFile(t, r.FS, path, content)
}

// ReadFile returns the content of path
func (r *ConfigRoot) ReadFile(t *testing.T, path string) string {
	t.Helper()
	return ReadFile(t, r.FS, path)
}

// WriteFile writes content to path on fsys, creating parent directories
func WriteFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}

// ReadFile returns the content of path on fsys
func ReadFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}
