package projects_test

import (
	"testing"

	"github.com/jonas-elhs/metemplate/pkg/config"
	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/projects"
	"github.com/jonas-elhs/metemplate/pkg/testutil"
	"github.com/jonas-elhs/metemplate/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProjects(t *testing.T) {
	root := testutil.NewMemoryRoot(t)
	root.Project(t, "theme").
		Template(t, "kitty", "bg {{bg}}\n", []string{"/out/kitty.conf"}, "").
		Template(t, "bash", "# {{bg}}\n", []string{"/out/a", "/out/b"}, "append").
		Values(t, "dark.toml", "bg = \"black\"\n[vars]\nblack = \"#000\"\n").
		Values(t, "light.yaml", "bg: white\n").
		Values(t, "notes.txt", "ignored")
	root.Project(t, "git")
	root.WriteFile(t, root.Path("metemplate.toml"), "[logging]\nfile = false\n")
	root.WriteFile(t, root.Path(".hidden", "config.toml"), "broken = ")

	loaded, err := projects.LoadProjects(root.FS, root.Root, config.Default())
	require.NoError(t, err)

	assert.Equal(t, []string{"git", "theme"}, loaded.Names())

	theme := loaded["theme"]
	assert.Equal(t, root.Path("theme"), theme.Path)
	require.Len(t, theme.Templates, 2)
	assert.Equal(t, types.Template{
		Name:     "bash",
		Contents: "# {{bg}}\n",
		Out:      []string{"/out/a", "/out/b"},
		Mode:     types.ModeAppend,
	}, theme.Templates[0])
	assert.Equal(t, "kitty", theme.Templates[1].Name)
	assert.Equal(t, types.ModeReplace, theme.Templates[1].Mode)

	assert.Equal(t, []string{"dark", "light"}, theme.ValueSetNames())
	assert.Equal(t, types.Values{"bg": "#000"}, theme.ValueSets["dark"].Values)
	assert.Equal(t, types.Values{"black": "#000"}, theme.ValueSets["dark"].Vars)
	assert.Equal(t, types.Values{"bg": "white"}, theme.ValueSets["light"].Values)

	git := loaded["git"]
	assert.Empty(t, git.Templates)
	assert.Empty(t, git.ValueSets, "missing values directory means no value sets")
}

func TestLoadProjects_MissingRoot(t *testing.T) {
	root := testutil.NewMemoryRoot(t)

	_, err := projects.LoadProjects(root.FS, root.Path("nope"), config.Default())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoadProjects_RootIsFile(t *testing.T) {
	root := testutil.NewMemoryRoot(t)
	root.WriteFile(t, root.Path("file"), "x")

	_, err := projects.LoadProjects(root.FS, root.Path("file"), config.Default())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadProjects_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, root *testutil.ConfigRoot)
		wantCode errors.ErrorCode
		wantMsg  string
	}{
		{
			name: "missing_config_file",
			setup: func(t *testing.T, root *testutil.ConfigRoot) {
				root.WriteFile(t, root.Path("p", "templates", "x"), "x")
			},
			wantCode: errors.ErrConfigLoad,
			wantMsg:  "failed to read project config file at path",
		},
		{
			name: "invalid_config_file",
			setup: func(t *testing.T, root *testutil.ConfigRoot) {
				root.Project(t, "p").Config(t, "[templates.x\n")
			},
			wantCode: errors.ErrConfigParse,
			wantMsg:  "failed to parse project config file at path",
		},
		{
			name: "missing_template_file",
			setup: func(t *testing.T, root *testutil.ConfigRoot) {
				root.Project(t, "p").Config(t, "[templates.x]\nfile = \"x.tmpl\"\nout = \"/o\"\n")
			},
			wantCode: errors.ErrConfigLoad,
			wantMsg:  "failed to read template file at path",
		},
		{
			name: "template_without_out",
			setup: func(t *testing.T, root *testutil.ConfigRoot) {
				root.Project(t, "p").Config(t, "[templates.x]\nfile = \"x.tmpl\"\n")
			},
			wantCode: errors.ErrConfigParse,
			wantMsg:  "template 'x' has no out",
		},
		{
			name: "template_without_file",
			setup: func(t *testing.T, root *testutil.ConfigRoot) {
				root.Project(t, "p").Config(t, "[templates.x]\nout = \"/o\"\n")
			},
			wantCode: errors.ErrConfigParse,
			wantMsg:  "template 'x' has no file",
		},
		{
			name: "unknown_mode",
			setup: func(t *testing.T, root *testutil.ConfigRoot) {
				root.Project(t, "p").Template(t, "x", "x", []string{"/o"}, "sideways")
			},
			wantCode: errors.ErrConfigParse,
			wantMsg:  "unknown template mode: sideways",
		},
		{
			name: "duplicate_value_set",
			setup: func(t *testing.T, root *testutil.ConfigRoot) {
				root.Project(t, "p").
					Values(t, "dark.toml", "a = \"1\"").
					Values(t, "dark.yaml", "a: 2")
			},
			wantCode: errors.ErrConfigLoad,
			wantMsg:  "value set 'dark' is defined more than once",
		},
		{
			name: "undefined_var",
			setup: func(t *testing.T, root *testutil.ConfigRoot) {
				root.Project(t, "p").Values(t, "dark.toml", "a = \"b\"\n[vars]\nc = \"d\"\n")
			},
			wantCode: errors.ErrConfigLoad,
			wantMsg:  "data 'b' not defined in values file at path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := testutil.NewMemoryRoot(t)
			tt.setup(t, root)

			_, err := projects.LoadProjects(root.FS, root.Root, config.Default())
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadProjects_CustomLayout(t *testing.T) {
	root := testutil.NewMemoryRoot(t)
	root.WriteFile(t, root.Path("p", "project.toml"), "[templates.x]\nfile = \"x\"\nout = \"/o\"\n")
	root.WriteFile(t, root.Path("p", "src", "x"), "hello")
	root.WriteFile(t, root.Path("p", "data", "main.toml"), "a = \"1\"")

	cfg := config.Default()
	cfg.Project.ConfigFile = "project.toml"
	cfg.Project.TemplatesDir = "src"
	cfg.Project.ValuesDir = "data"

	loaded, err := projects.LoadProjects(root.FS, root.Root, cfg)
	require.NoError(t, err)
	assert.Equal(t, "hello", loaded["p"].Templates[0].Contents)
	assert.Equal(t, []string{"main"}, loaded["p"].ValueSetNames())
}
