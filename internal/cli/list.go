package cli

import (
	"fmt"

	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/projects"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var (
		project  string
		noValues bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projs, err := a.loadProjects()
			if err != nil {
				return err
			}

			selected, err := projects.Select(projs, project)
			if err != nil {
				return err
			}

			renderer, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderProjectList(selected, !noValues))
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", MsgFlagProject)
	cmd.Flags().BoolVar(&noValues, "no-values", false, MsgFlagNoValues)

	_ = cmd.RegisterFlagCompletionFunc("project", a.projectNameCompletion)

	return cmd
}
