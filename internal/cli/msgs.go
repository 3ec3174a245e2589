package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render templates from named value sets"
	MsgGenerateShort   = "Generate template files"
	MsgListShort       = "List projects and their value sets"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config directory (default $METEMPLATE_CONFIG_DIR or $XDG_CONFIG_HOME/metemplate)"
	MsgFlagNoLogFile = "Do not write a log file"
	MsgFlagFormat    = "Output format: auto, term or text"
	MsgFlagRandom    = "Pick a random value set"
	MsgFlagTemplate  = "Only generate this template"
	MsgFlagSet       = "Override a value (KEY=VALUE, repeatable)"
	MsgFlagDryRun    = "Preview generation without writing files"
	MsgFlagProject   = "Only list this project"
	MsgFlagNoValues  = "Do not list value sets"

	// Error messages
	MsgErrValuesAndRandom = "cannot combine a value set name with --random"
	MsgErrNoCommand       = "no command specified"

	// Version output
	MsgVersionFormat = "metemplate version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
