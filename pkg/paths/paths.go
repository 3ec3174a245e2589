package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/jonas-elhs/metemplate/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for metemplate
	EnvConfigDir = "METEMPLATE_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used below the XDG base directories
	AppDirName = "metemplate"

	// SettingsFileName is the optional settings file inside the config root
	SettingsFileName = "metemplate.toml"

	// LogFileName is the name of the log file
	LogFileName = "metemplate.log"
)

// Paths provides centralized path management for metemplate
type Paths interface {
	ConfigRoot() string
	SettingsFile() string
	LogFilePath() string
}

type paths struct {
	configRoot string
	stateDir   string
}

// New creates a Paths instance. An empty configRoot selects the
// METEMPLATE_CONFIG_DIR environment variable, then $XDG_CONFIG_HOME/metemplate.
func New(configRoot string) (Paths, error) {
	if configRoot == "" {
		configRoot = os.Getenv(EnvConfigDir)
	}
	if configRoot == "" {
		configRoot = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	absRoot, err := filepath.Abs(ExpandHome(configRoot))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to get absolute path for config root '%s'", configRoot)
	}

	return &paths{
		configRoot: absRoot,
		stateDir:   StateDir(),
	}, nil
}

// ConfigRoot returns the directory that contains one subdirectory per project
func (p *paths) ConfigRoot() string {
	return p.configRoot
}

// SettingsFile returns the path of the optional settings file
func (p *paths) SettingsFile() string {
	return filepath.Join(p.configRoot, SettingsFileName)
}

// LogFilePath returns the path to the metemplate log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// StateDir returns the XDG state directory for metemplate
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppDirName)
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrConfigLoad, "failed to get home directory")
	}
	return homeDir, nil
}

// ExpandHome expands a leading ~ to the home directory. Paths of the form
// ~user are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		// Can't expand, return as-is
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
