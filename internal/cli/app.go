package cli

import (
	"io"

	"github.com/jonas-elhs/metemplate/pkg/config"
	"github.com/jonas-elhs/metemplate/pkg/filesystem"
	"github.com/jonas-elhs/metemplate/pkg/logging"
	"github.com/jonas-elhs/metemplate/pkg/paths"
	"github.com/jonas-elhs/metemplate/pkg/projects"
	"github.com/jonas-elhs/metemplate/pkg/style"
	"github.com/jonas-elhs/metemplate/pkg/types"
	"github.com/spf13/cobra"
)

// app carries the global flags and what is derived from them for one run
type app struct {
	verbosity int
	configDir string
	noLogFile bool
	format    string

	paths    paths.Paths
	settings *config.Config
	fs       types.FS
}

// setup resolves paths, loads settings and configures logging
func (a *app) setup(cmd *cobra.Command) error {
	p, err := paths.New(a.configDir)
	if err != nil {
		return err
	}

	var overrides map[string]interface{}
	if a.noLogFile {
		overrides = map[string]interface{}{"logging.file": false}
	}
	settings, err := config.LoadWithOverrides(p.SettingsFile(), overrides)
	if err != nil {
		return err
	}

	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity: a.verbosity,
		File:      settings.Logging.File,
		Path:      p.LogFilePath(),
		Console:   cmd.ErrOrStderr(),
	})
	logging.GetLogger("cli").Debug().
		Str("command", cmd.Name()).
		Str("configRoot", p.ConfigRoot()).
		Msg("Command started")

	a.paths = p
	a.settings = settings
	if a.fs == nil {
		a.fs = filesystem.NewOS()
	}
	return nil
}

// loadProjects reads every project of the config root
func (a *app) loadProjects() (types.Projects, error) {
	return projects.LoadProjects(a.fs, a.paths.ConfigRoot(), a.settings)
}

// renderer picks the output renderer for out
func (a *app) renderer(out io.Writer) (style.Renderer, error) {
	format, err := style.ParseFormat(a.format)
	if err != nil {
		return nil, err
	}
	return style.NewRenderer(format.Resolve(out)), nil
}
