package cli

import (
	"embed"
	"io/fs"

	"github.com/jonas-elhs/metemplate/internal/version"
	"github.com/jonas-elhs/metemplate/pkg/cobrax/topics"
	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "metemplate",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&a.configDir, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&a.noLogFile, "no-log-file", false, MsgFlagNoLogFile)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help system
	topicsFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		_, _ = topics.InitializeWithOptions(rootCmd, topicsFS, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(stdoutIsTerminal()),
		})
	}

	return rootCmd
}
