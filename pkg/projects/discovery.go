package projects

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonas-elhs/metemplate/pkg/config"
	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/logging"
	"github.com/jonas-elhs/metemplate/pkg/types"
)

// GetProjectCandidates returns the project directories below root in
// ascending order
func GetProjectCandidates(fsys types.FS, root string) ([]string, error) {
	logger := logging.GetLogger("projects.discovery")
	logger.Trace().Str("root", root).Msg("Getting project candidates")

	info, err := fsys.Stat(root)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config directory '%s' does not exist", root).
				WithDetail("path", root)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot access config directory '%s'", root).
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrConfigLoad, "config directory '%s' is not a directory", root).
			WithDetail("path", root)
	}

	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config directory '%s'", root).
			WithDetail("path", root)
	}

	var candidates []string
	for _, entry := range entries {
		name := entry.Name()

		if strings.HasPrefix(name, ".") {
			logger.Trace().Str("name", name).Msg("Skipping hidden entry")
			continue
		}

		// Only consider directories
		if !entry.IsDir() {
			continue
		}

		fullPath := filepath.Join(root, name)
		candidates = append(candidates, fullPath)
		logger.Trace().Str("path", fullPath).Msg("Found project candidate")
	}

	sort.Strings(candidates)
	return candidates, nil
}

// LoadProjects loads every project below root
func LoadProjects(fsys types.FS, root string, cfg *config.Config) (types.Projects, error) {
	logger := logging.GetLogger("projects.discovery")

	candidates, err := GetProjectCandidates(fsys, root)
	if err != nil {
		return nil, err
	}

	projects := make(types.Projects, len(candidates))
	for _, candidate := range candidates {
		project, err := LoadProject(fsys, candidate, cfg)
		if err != nil {
			return nil, err
		}
		projects[project.Name] = project
	}

	logger.Debug().Int("count", len(projects)).Str("root", root).Msg("Loaded projects")
	return projects, nil
}

// LoadProject loads the project in dir
func LoadProject(fsys types.FS, dir string, cfg *config.Config) (types.Project, error) {
	name := filepath.Base(dir)
	logger := logging.GetLogger("projects.discovery").With().Str("project", name).Logger()

	configPath := filepath.Join(dir, cfg.Project.ConfigFile)
	data, err := fsys.ReadFile(configPath)
	if err != nil {
		return types.Project{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read project config file at path '%s'", configPath).
			WithDetail("project", name)
	}

	projectConfig, err := ParseProjectConfig(data)
	if err != nil {
		return types.Project{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse project config file at path '%s'", configPath).
			WithDetail("project", name)
	}

	templates, err := loadTemplates(fsys, dir, name, projectConfig, cfg)
	if err != nil {
		return types.Project{}, err
	}

	valueSets, err := loadValueSets(fsys, filepath.Join(dir, cfg.Project.ValuesDir), cfg)
	if err != nil {
		return types.Project{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load values of project '%s'", name).
			WithDetail("project", name)
	}

	logger.Trace().
		Int("templates", len(templates)).
		Int("valueSets", len(valueSets)).
		Msg("Project loaded")

	return types.Project{
		Name:      name,
		Path:      dir,
		Templates: templates,
		ValueSets: valueSets,
	}, nil
}

func loadTemplates(fsys types.FS, dir, projectName string, projectConfig ProjectConfig, cfg *config.Config) ([]types.Template, error) {
	templatesDir := filepath.Join(dir, cfg.Project.TemplatesDir)

	templates := make([]types.Template, 0, len(projectConfig.Templates))
	for _, name := range projectConfig.TemplateNames() {
		decl := projectConfig.Templates[name]

		out, mode, err := decl.validate(name)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid template declaration in project '%s'", projectName).
				WithDetail("project", projectName)
		}

		templatePath := filepath.Join(templatesDir, decl.File)
		contents, err := fsys.ReadFile(templatePath)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read template file at path '%s'", templatePath).
				WithDetail("project", projectName).
				WithDetail("template", name)
		}

		templates = append(templates, types.Template{
			Name:     name,
			Contents: string(contents),
			Out:      out,
			Mode:     mode,
		})
	}

	return templates, nil
}

func loadValueSets(fsys types.FS, valuesDir string, cfg *config.Config) (map[string]types.ValueSet, error) {
	valueSets := map[string]types.ValueSet{}

	entries, err := fsys.ReadDir(valuesDir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return valueSets, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read values directory at path '%s'", valuesDir)
	}

	for _, entry := range entries {
		if entry.IsDir() || !cfg.Project.IsValueFile(entry.Name()) {
			continue
		}

		path := filepath.Join(valuesDir, entry.Name())
		data, err := fsys.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read values file at path '%s'", path)
		}

		vs, err := ParseValueSet(path, data)
		if err != nil {
			return nil, err
		}

		if _, ok := valueSets[vs.Name]; ok {
			return nil, errors.Newf(errors.ErrConfigParse, "value set '%s' is defined more than once in '%s'", vs.Name, valuesDir)
		}
		valueSets[vs.Name] = vs
	}

	return valueSets, nil
}
