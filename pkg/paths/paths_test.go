// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Environment variables
// PURPOSE: Test config root discovery and home expansion

package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/jonas-elhs/metemplate/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"tilde_only", "~", home},
		{"tilde_slash", "~/.config/git/config", filepath.Join(home, ".config/git/config")},
		{"other_user", "~bob/x", "~bob/x"},
		{"absolute", "/etc/hosts", "/etc/hosts"},
		{"relative", "out/file", "out/file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.ExpandHome(tt.in))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("explicit_root_wins", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv(paths.EnvConfigDir, "/somewhere/else")

		p, err := paths.New(root)
		require.NoError(t, err)
		assert.Equal(t, root, p.ConfigRoot())
		assert.Equal(t, filepath.Join(root, paths.SettingsFileName), p.SettingsFile())
	})

	t.Run("env_root", func(t *testing.T) {
		root := t.TempDir()
		t.Setenv(paths.EnvConfigDir, root)

		p, err := paths.New("")
		require.NoError(t, err)
		assert.Equal(t, root, p.ConfigRoot())
	})

	t.Run("tilde_root_is_expanded", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		p, err := paths.New("~/templates")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "templates"), p.ConfigRoot())
	})

	t.Run("log_file_below_state_dir", func(t *testing.T) {
		p, err := paths.New(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, paths.LogFileName, filepath.Base(p.LogFilePath()))
		assert.Equal(t, paths.AppDirName, filepath.Base(filepath.Dir(p.LogFilePath())))
	})
}
