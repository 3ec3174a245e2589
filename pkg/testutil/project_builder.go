package testutil

import (
	"path/filepath"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"
)

// ProjectBuilder lays out one project below a ConfigRoot. Every Template
// call rewrites config.toml.
type ProjectBuilder struct {
	root      *ConfigRoot
	Name      string
	Dir       string
	templates map[string]map[string]interface{}
}

// Project creates the project directory and returns its builder
func (r *ConfigRoot) Project(t *testing.T, name string) *ProjectBuilder {
	t.Helper()

	dir := r.Path(name)
	require.NoError(t, r.FS.MkdirAll(dir, 0755))

	p := &ProjectBuilder{
		root:      r,
		Name:      name,
		Dir:       dir,
		templates: map[string]map[string]interface{}{},
	}
	p.writeConfig(t)
	return p
}

// Template adds a template source file and declares it. mode may be empty.
func (p *ProjectBuilder) Template(t *testing.T, name, contents string, out []string, mode string) *ProjectBuilder {
	t.Helper()

	file := name + ".tmpl"
	p.root.WriteFile(t, filepath.Join(p.Dir, "templates", file), contents)

	decl := map[string]interface{}{
		"file": file,
		"out":  out,
	}
	if mode != "" {
		decl["mode"] = mode
	}
	p.templates[name] = decl
	p.writeConfig(t)
	return p
}

// Values writes a values file. fileName carries the extension, e.g. "dark.toml".
func (p *ProjectBuilder) Values(t *testing.T, fileName, content string) *ProjectBuilder {
	t.Helper()

	p.root.WriteFile(t, filepath.Join(p.Dir, "values", fileName), content)
	return p
}

// Config overwrites config.toml with raw content
func (p *ProjectBuilder) Config(t *testing.T, content string) *ProjectBuilder {
	t.Helper()

	p.root.WriteFile(t, filepath.Join(p.Dir, "config.toml"), content)
	return p
}

func (p *ProjectBuilder) writeConfig(t *testing.T) {
	t.Helper()

	data, err := toml.Marshal(map[string]interface{}{"templates": p.templates})
	require.NoError(t, err)
	p.root.WriteFile(t, filepath.Join(p.Dir, "config.toml"), string(data))
}
