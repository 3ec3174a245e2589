package generate

import (
	"path/filepath"

	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/filesystem"
	"github.com/jonas-elhs/metemplate/pkg/logging"
	"github.com/jonas-elhs/metemplate/pkg/render"
	"github.com/jonas-elhs/metemplate/pkg/section"
	"github.com/jonas-elhs/metemplate/pkg/types"
)

// Render expands the repeat blocks of tmpl and fills its placeholders
func Render(tmpl types.Template, values, vars types.Values, valuesName string) (string, error) {
	expanded, err := render.ExpandRepeats(tmpl.Contents, render.NewPools(values, vars), tmpl.Name)
	if err != nil {
		return "", err
	}

	filled, err := render.Fill(expanded, values, valuesName)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRender, "failed to render template '%s'", tmpl.Name).
			WithDetail("template", tmpl.Name)
	}
	return filled, nil
}

func (g *Generator) generateTemplate(tmpl types.Template, values, vars types.Values, valuesName string, dryRun bool) ([]Output, error) {
	logger := logging.WithFields(map[string]interface{}{
		"component": "generate",
		"template":  tmpl.Name,
	})
	logger.Trace().
		Strs("placeholders", render.Placeholders(tmpl.Contents)).
		Int("outputs", len(tmpl.Out)).
		Msg("Rendering template")

	rendered, err := Render(tmpl, values, vars, valuesName)
	if err != nil {
		return nil, err
	}

	outputs := make([]Output, 0, len(tmpl.Out))
	for _, path := range tmpl.Out {
		content, err := g.writeOutput(tmpl, path, rendered, dryRun)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, Output{Template: tmpl.Name, Path: path, Content: content})

		logger.Debug().
			Str("path", path).
			Str("mode", tmpl.Mode.String()).
			Int("bytes", len(content)).
			Bool("dryRun", dryRun).
			Msg("Synchronized output")
	}

	return outputs, nil
}

// writeOutput synchronizes one destination and writes it unless dryRun is set
func (g *Generator) writeOutput(tmpl types.Template, path, rendered string, dryRun bool) (string, error) {
	if !dryRun {
		dir := filepath.Dir(path)
		if err := g.fs.MkdirAll(dir, g.dirMode); err != nil {
			return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create output directory for template '%s' at '%s'", tmpl.Name, dir).
				WithDetail("template", tmpl.Name).
				WithDetail("path", dir)
		}
	}

	existing := ""
	if tmpl.Mode != types.ModeReplace {
		exists, err := filesystem.Exists(g.fs, path)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileRead, "failed to read existing output file '%s' of template '%s'", path, tmpl.Name).
				WithDetail("template", tmpl.Name).
				WithDetail("path", path)
		}
		if exists {
			data, err := g.fs.ReadFile(path)
			if err != nil {
				return "", errors.Wrapf(err, errors.ErrFileRead, "failed to read existing output file '%s' of template '%s'", path, tmpl.Name).
					WithDetail("template", tmpl.Name).
					WithDetail("path", path)
			}
			existing = string(data)
		}
	}

	content, err := section.Synchronize(tmpl.Mode, existing, rendered, tmpl.Name)
	if err != nil {
		return "", err
	}

	if dryRun {
		return content, nil
	}

	if err := filesystem.AtomicWrite(g.fs, path, []byte(content), g.fileMode); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write template '%s' to '%s'", tmpl.Name, path).
			WithDetail("template", tmpl.Name).
			WithDetail("path", path)
	}

	return content, nil
}
