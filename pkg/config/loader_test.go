package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonas-elhs/metemplate/pkg/config"
	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metemplate.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, os.FileMode(0644), cfg.Output.FilePerm())
	assert.Equal(t, os.FileMode(0755), cfg.Output.DirPerm())
	assert.Equal(t, "config.toml", cfg.Project.ConfigFile)
	assert.Equal(t, "templates", cfg.Project.TemplatesDir)
	assert.Equal(t, "values", cfg.Project.ValuesDir)
	assert.Equal(t, []string{".toml", ".yaml", ".yml"}, cfg.Project.ValueExtensions)
	assert.True(t, cfg.Logging.File)
}

func TestLoad_MissingSettingsFileIsIgnored(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_SettingsFile(t *testing.T) {
	path := writeSettings(t, `
[output]
file_mode = 384

[project]
templates_dir = "tpl"

[logging]
file = false
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, os.FileMode(0600), cfg.Output.FilePerm())
	assert.Equal(t, os.FileMode(0755), cfg.Output.DirPerm(), "untouched keys keep defaults")
	assert.Equal(t, "tpl", cfg.Project.TemplatesDir)
	assert.Equal(t, "values", cfg.Project.ValuesDir)
	assert.False(t, cfg.Logging.File)
}

func TestLoad_InvalidSettingsFile(t *testing.T) {
	path := writeSettings(t, "[output\nfile_mode = ")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeSettings(t, "[output]\nfile_mode = 384\n")
	t.Setenv("METEMPLATE_OUTPUT_FILE_MODE", "416")
	t.Setenv("METEMPLATE_PROJECT_VALUES_DIR", "vals")
	t.Setenv("METEMPLATE_PROJECT_VALUE_EXTENSIONS", ".toml,.json")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, os.FileMode(0640), cfg.Output.FilePerm())
	assert.Equal(t, "vals", cfg.Project.ValuesDir)
	assert.Equal(t, []string{".toml", ".json"}, cfg.Project.ValueExtensions)
}

func TestLoadWithOverrides(t *testing.T) {
	t.Setenv("METEMPLATE_LOGGING_FILE", "true")

	cfg, err := config.LoadWithOverrides("", map[string]interface{}{
		"logging.file": false,
	})
	require.NoError(t, err)
	assert.False(t, cfg.Logging.File)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zero_file_mode", content: "[output]\nfile_mode = 0\n"},
		{name: "file_mode_out_of_range", content: "[output]\nfile_mode = 4096\n"},
		{name: "empty_templates_dir", content: "[project]\ntemplates_dir = \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeSettings(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		})
	}
}

func TestProject_IsValueFile(t *testing.T) {
	p := config.Default().Project

	assert.True(t, p.IsValueFile("dark.toml"))
	assert.True(t, p.IsValueFile("dark.YAML"))
	assert.True(t, p.IsValueFile("dark.yml"))
	assert.False(t, p.IsValueFile("dark.json"))
	assert.False(t, p.IsValueFile("README"))
}

func TestGetDefaultConfigContent(t *testing.T) {
	content := config.GetDefaultConfigContent()
	assert.Contains(t, content, "[output]")
	assert.Contains(t, content, "values_dir")
}
