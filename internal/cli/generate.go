package cli

import (
	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/generate"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	random    bool
	template  string
	overrides []string
	dryRun    bool
}

func newGenerateCmd(a *app) *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:               "generate <project> [values]",
		Short:             MsgGenerateShort,
		Long:              MsgGenerateLong,
		Example:           MsgGenerateExample,
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: a.projectAndValuesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, flags, args)
		},
	}

	cmd.Flags().BoolVarP(&flags.random, "random", "r", false, MsgFlagRandom)
	cmd.Flags().StringVarP(&flags.template, "template", "t", "", MsgFlagTemplate)
	cmd.Flags().StringArrayVarP(&flags.overrides, "set", "s", nil, MsgFlagSet)
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)

	_ = cmd.RegisterFlagCompletionFunc("template", a.templateCompletion)

	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, flags *generateFlags, args []string) error {
	req := generate.Request{
		Project:  args[0],
		Random:   flags.random,
		Template: flags.template,
		DryRun:   flags.dryRun,
	}
	if len(args) > 1 {
		req.ValueSet = args[1]
	}
	if req.ValueSet != "" && req.Random {
		return errors.New(errors.ErrInvalidInput, MsgErrValuesAndRandom)
	}

	overrides, err := generate.ParseOverrides(flags.overrides)
	if err != nil {
		return err
	}
	req.Overrides = overrides

	projs, err := a.loadProjects()
	if err != nil {
		return err
	}

	renderer, err := a.renderer(cmd.OutOrStdout())
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
	}

	g := generate.New(a.fs,
		generate.WithOutput(cmd.OutOrStdout()),
		generate.WithRenderer(renderer),
		generate.WithFileMode(a.settings.Output.FilePerm()),
		generate.WithDirMode(a.settings.Output.DirPerm()),
	)

	_, err = g.Generate(projs, req)
	return err
}
