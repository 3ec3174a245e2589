package projects

import (
	"fmt"
	"sort"

	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/paths"
	"github.com/jonas-elhs/metemplate/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// ProjectConfig is the parsed config.toml of a project
type ProjectConfig struct {
	Templates map[string]TemplateConfig `toml:"templates"`
}

// TemplateConfig declares one template
type TemplateConfig struct {
	File string `toml:"file"`
	// Out is a single path or a list of paths
	Out  interface{} `toml:"out"`
	Mode string      `toml:"mode"`
}

// ParseProjectConfig parses the content of a config.toml
func ParseProjectConfig(data []byte) (ProjectConfig, error) {
	var cfg ProjectConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return cfg, nil
}

// TemplateNames returns the declared template names in ascending order
func (c ProjectConfig) TemplateNames() []string {
	names := make([]string, 0, len(c.Templates))
	for name := range c.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OutPaths normalizes Out into a list of paths with ~ expanded
func (t TemplateConfig) OutPaths() ([]string, error) {
	var raw []string
	switch out := t.Out.(type) {
	case nil:
	case string:
		raw = []string{out}
	case []interface{}:
		for _, item := range out {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("out entries must be strings, got %T", item)
			}
			raw = append(raw, s)
		}
	case []string:
		raw = out
	default:
		return nil, fmt.Errorf("out must be a string or a list of strings, got %T", out)
	}

	result := make([]string, 0, len(raw))
	for _, p := range raw {
		if p == "" {
			return nil, fmt.Errorf("out entries must not be empty")
		}
		result = append(result, paths.ExpandHome(p))
	}
	return result, nil
}

// validate checks a declaration and returns its out paths and mode
func (t TemplateConfig) validate(name string) ([]string, types.TemplateMode, error) {
	if t.File == "" {
		return nil, types.ModeReplace, errors.Newf(errors.ErrConfigParse, "template '%s' has no file", name)
	}

	out, err := t.OutPaths()
	if err != nil {
		return nil, types.ModeReplace, errors.Wrapf(err, errors.ErrConfigParse, "invalid out for template '%s'", name)
	}
	if len(out) == 0 {
		return nil, types.ModeReplace, errors.Newf(errors.ErrConfigParse, "template '%s' has no out", name)
	}

	mode, err := types.ParseTemplateMode(t.Mode)
	if err != nil {
		return nil, types.ModeReplace, errors.Wrapf(err, errors.ErrConfigParse, "invalid mode for template '%s'", name)
	}

	return out, mode, nil
}
