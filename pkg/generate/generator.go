package generate

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/logging"
	"github.com/jonas-elhs/metemplate/pkg/style"
	"github.com/jonas-elhs/metemplate/pkg/types"
)

// OverridesValuesName labels the value table of a run without a value set
const OverridesValuesName = "overrides"

// Default permissions for written files and created directories
const (
	DefaultFileMode fs.FileMode = 0644
	DefaultDirMode  fs.FileMode = 0755
)

// Request selects what to generate
type Request struct {
	Project string
	// ValueSet names the value set; empty with Random picks one at random
	ValueSet  string
	Overrides []types.Override
	Random    bool
	// Template restricts the run to one template; empty means all
	Template string
	// DryRun renders and synchronizes without writing anything
	DryRun bool
}

// Output is one synchronized destination
type Output struct {
	Template string
	Path     string
	Content  string
}

// Result describes a completed run
type Result struct {
	Project string
	// ValueSet is the selected value set, or OverridesValuesName
	ValueSet  string
	Values    types.Values
	Templates []string
	Outputs   []Output
	DryRun    bool
}

// Generator renders and writes templates
type Generator struct {
	fs       types.FS
	out      io.Writer
	renderer style.Renderer
	chooser  Chooser
	fileMode fs.FileMode
	dirMode  fs.FileMode
}

// Option configures a Generator
type Option func(*Generator)

// WithOutput sets where per-template notifications are written
func WithOutput(w io.Writer) Option {
	return func(g *Generator) {
		g.out = w
	}
}

// WithRenderer sets how per-template notifications are rendered
func WithRenderer(r style.Renderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}

// WithChooser sets the chooser used for random value set selection
func WithChooser(c Chooser) Option {
	return func(g *Generator) {
		g.chooser = c
	}
}

// WithFileMode sets the permissions of written files
func WithFileMode(mode fs.FileMode) Option {
	return func(g *Generator) {
		g.fileMode = mode
	}
}

// WithDirMode sets the permissions of created parent directories
func WithDirMode(mode fs.FileMode) Option {
	return func(g *Generator) {
		g.dirMode = mode
	}
}

// New creates a Generator working on fsys
func New(fsys types.FS, opts ...Option) *Generator {
	g := &Generator{
		fs:       fsys,
		out:      os.Stdout,
		renderer: style.NewPlainRenderer(),
		chooser:  RandomChooser{},
		fileMode: DefaultFileMode,
		dirMode:  DefaultDirMode,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs req against projects
func (g *Generator) Generate(projects types.Projects, req Request) (*Result, error) {
	logger := logging.GetLogger("generate").With().Str("project", req.Project).Logger()
	done := logging.LogOperationStart(logger, "generate")
	defer done()

	project, ok := projects[req.Project]
	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "no project named '%s' found", req.Project).
			WithDetail("project", req.Project)
	}

	valuesName, valueSet, err := g.selectValueSet(project, req)
	if err != nil {
		return nil, err
	}
	values := types.ApplyOverrides(valueSet.Values, req.Overrides)

	logger.Debug().
		Str("values", valuesName).
		Int("overrides", len(req.Overrides)).
		Bool("dryRun", req.DryRun).
		Msg("Selected values")

	templates, err := selectTemplates(project, req.Template)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Project:  project.Name,
		ValueSet: valuesName,
		Values:   values,
		DryRun:   req.DryRun,
	}

	for _, tmpl := range templates {
		outputs, err := g.generateTemplate(tmpl, values, valueSet.Vars, valuesName, req.DryRun)
		if err != nil {
			if errors.IsIOError(err) {
				logger.Error().Err(err).Str("template", tmpl.Name).Msg("Template output failed")
			}
			return nil, err
		}
		result.Templates = append(result.Templates, tmpl.Name)
		result.Outputs = append(result.Outputs, outputs...)

		fmt.Fprintln(g.out, g.renderer.RenderGenerated(tmpl.Name, req.DryRun))
	}

	return result, nil
}

// selectValueSet returns the label used in error messages and the chosen
// value set. Override-only runs get an empty set.
func (g *Generator) selectValueSet(project types.Project, req Request) (string, types.ValueSet, error) {
	if req.ValueSet != "" {
		vs, ok := project.ValueSet(req.ValueSet)
		if !ok {
			return "", types.ValueSet{}, errors.Newf(errors.ErrNotFound, "no value set named '%s' found in project '%s'", req.ValueSet, project.Name).
				WithDetail("project", project.Name).
				WithDetail("values", req.ValueSet)
		}
		return vs.Name, vs, nil
	}

	if req.Random {
		names := project.ValueSetNames()
		if len(names) == 0 {
			return "", types.ValueSet{}, errors.Newf(errors.ErrSelection, "project '%s' has no value sets", project.Name).
				WithDetail("project", project.Name)
		}
		name := g.chooser.Choose(names)
		vs, ok := project.ValueSet(name)
		if !ok {
			return "", types.ValueSet{}, errors.Newf(errors.ErrInternal, "chooser returned unknown value set '%s'", name)
		}
		return vs.Name, vs, nil
	}

	if len(req.Overrides) == 0 {
		return "", types.ValueSet{}, errors.New(errors.ErrSelection, "must supply a value set name or random flag").
			WithDetail("project", project.Name)
	}

	return OverridesValuesName, types.ValueSet{Name: OverridesValuesName, Values: types.Values{}}, nil
}

func selectTemplates(project types.Project, name string) ([]types.Template, error) {
	if name != "" {
		tmpl, ok := project.Template(name)
		if !ok {
			return nil, errors.Newf(errors.ErrNotFound, "no template named '%s' found in project '%s'", name, project.Name).
				WithDetail("project", project.Name).
				WithDetail("template", name)
		}
		return []types.Template{tmpl}, nil
	}

	if len(project.Templates) == 0 {
		return nil, errors.Newf(errors.ErrSelection, "no templates found in project '%s'", project.Name).
			WithDetail("project", project.Name)
	}
	return project.Templates, nil
}
