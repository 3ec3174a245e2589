package config

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// EnvPrefix is the prefix of environment variables read as settings
const EnvPrefix = "METEMPLATE_"

// Config holds metemplate's settings
type Config struct {
	Output  Output  `koanf:"output"`
	Project Project `koanf:"project"`
	Logging Logging `koanf:"logging"`
}

// Output controls how generated files are written
type Output struct {
	FileMode int `koanf:"file_mode"`
	DirMode  int `koanf:"dir_mode"`
}

// FilePerm returns the permission bits for generated files
func (o Output) FilePerm() fs.FileMode {
	return fs.FileMode(o.FileMode) & fs.ModePerm
}

// DirPerm returns the permission bits for created directories
func (o Output) DirPerm() fs.FileMode {
	return fs.FileMode(o.DirMode) & fs.ModePerm
}

// Project describes the on-disk layout of a project directory
type Project struct {
	ConfigFile      string   `koanf:"config_file"`
	TemplatesDir    string   `koanf:"templates_dir"`
	ValuesDir       string   `koanf:"values_dir"`
	ValueExtensions []string `koanf:"value_extensions"`
}

// IsValueFile reports whether name has one of the configured value file extensions
func (p Project) IsValueFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, allowed := range p.ValueExtensions {
		if strings.ToLower(allowed) == ext {
			return true
		}
	}
	return false
}

// Logging controls log output
type Logging struct {
	File bool `koanf:"file"`
}
