// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS
// PURPOSE: Test afero-backed FS behaviour and atomic writes

package filesystem_test

import (
	"path/filepath"
	"testing"

	"github.com/jonas-elhs/metemplate/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWrite(t *testing.T) {
	t.Run("creates_new_file", func(t *testing.T) {
		fsys := filesystem.NewMemory()
		require.NoError(t, fsys.MkdirAll("/out", 0755))

		require.NoError(t, filesystem.AtomicWrite(fsys, "/out/config", []byte("url: a.com\n"), 0644))

		data, err := fsys.ReadFile("/out/config")
		require.NoError(t, err)
		assert.Equal(t, "url: a.com\n", string(data))
	})

	t.Run("replaces_existing_file_without_leftovers", func(t *testing.T) {
		fsys := filesystem.NewMemory()
		require.NoError(t, fsys.MkdirAll("/out", 0755))
		require.NoError(t, fsys.WriteFile("/out/config", []byte("old"), 0644))

		require.NoError(t, filesystem.AtomicWrite(fsys, "/out/config", []byte("new"), 0644))

		data, err := fsys.ReadFile("/out/config")
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))

		entries, err := fsys.ReadDir("/out")
		require.NoError(t, err)
		require.Len(t, entries, 1, "temp file should be renamed away")
		assert.Equal(t, "config", entries[0].Name())
	})

	t.Run("real_filesystem", func(t *testing.T) {
		fsys := filesystem.NewOS()
		path := filepath.Join(t.TempDir(), "rc")

		require.NoError(t, filesystem.AtomicWrite(fsys, path, []byte("a\nb\n"), 0600))

		data, err := fsys.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", string(data))
	})
}

func TestExists(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.WriteFile("/present", []byte("x"), 0644))

	ok, err := filesystem.Exists(fsys, "/present")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = filesystem.Exists(fsys, "/absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadFile_Directory(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/dir", 0755))

	_, err := fsys.ReadFile("/dir")
	assert.Error(t, err)
}
