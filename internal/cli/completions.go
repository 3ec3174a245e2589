package cli

import (
	"github.com/jonas-elhs/metemplate/pkg/types"
	"github.com/spf13/cobra"
)

// completionProjects loads projects for shell completion, running setup first
// when the root pre-run hook did not.
func (a *app) completionProjects(cmd *cobra.Command) (types.Projects, bool) {
	if a.settings == nil {
		if err := a.setup(cmd); err != nil {
			return nil, false
		}
	}
	projs, err := a.loadProjects()
	if err != nil {
		return nil, false
	}
	return projs, true
}

// projectNameCompletion completes project names
func (a *app) projectNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	projs, ok := a.completionProjects(cmd)
	if !ok {
		return nil, cobra.ShellCompDirectiveError
	}
	return projs.Names(), cobra.ShellCompDirectiveNoFileComp
}

// projectAndValuesCompletion completes the project, then its value sets
func (a *app) projectAndValuesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return a.projectNameCompletion(cmd, args, toComplete)
	case 1:
		projs, ok := a.completionProjects(cmd)
		if !ok {
			return nil, cobra.ShellCompDirectiveError
		}
		project, exists := projs[args[0]]
		if !exists {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return project.ValueSetNames(), cobra.ShellCompDirectiveNoFileComp
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

// templateCompletion completes the template names of the project in args[0]
func (a *app) templateCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	projs, ok := a.completionProjects(cmd)
	if !ok {
		return nil, cobra.ShellCompDirectiveError
	}
	project, exists := projs[args[0]]
	if !exists {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := make([]string, 0, len(project.Templates))
	for _, t := range project.Templates {
		names = append(names, t.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
