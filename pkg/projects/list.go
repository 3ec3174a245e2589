package projects

import (
	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/types"
)

// Select returns the projects to list in name order. A non-empty name keeps
// only that project.
func Select(projects types.Projects, name string) ([]types.Project, error) {
	if name != "" {
		p, ok := projects[name]
		if !ok {
			return nil, errors.Newf(errors.ErrNotFound, "no project named '%s' found", name).
				WithDetail("project", name)
		}
		return []types.Project{p}, nil
	}

	if len(projects) == 0 {
		return nil, errors.New(errors.ErrNotFound, "no projects found")
	}

	selected := make([]types.Project, 0, len(projects))
	for _, n := range projects.Names() {
		selected = append(selected, projects[n])
	}
	return selected, nil
}
