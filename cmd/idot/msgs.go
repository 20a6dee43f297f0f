package idot

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A declarative dotfiles symlink manager"
	MsgStatusShort     = "Show which links are active"
	MsgCreateShort     = "Create the configured links"
	MsgDeleteShort     = "Remove the links owned by the workspace"
	MsgInitShort       = "Print or write a starter configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Error messages
	MsgErrStatus = "failed to get link status: %w"
	MsgErrCreate = "failed to create links: %w"
	MsgErrDelete = "failed to delete links: %w"
	MsgErrInit   = "failed to generate configuration: %w"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v DEBUG, -vv TRACE)"
	MsgFlagSimulate     = "Compute and log every step without changing the filesystem"
	MsgFlagFormat       = "Output format: auto, term, text or json"
	MsgFlagForce        = "Replace files in the way of links"
	MsgFlagConfigFormat = "Configuration format: json, toml or yaml"
	MsgFlagWrite        = "Write the configuration into the workspace"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimRight(msgStatusExampleRaw, "\n")

	//go:embed msgs/create-long.txt
	msgCreateLongRaw string
	MsgCreateLong    = strings.TrimSpace(msgCreateLongRaw)

	//go:embed msgs/create-example.txt
	msgCreateExampleRaw string
	MsgCreateExample    = strings.TrimRight(msgCreateExampleRaw, "\n")

	//go:embed msgs/delete-long.txt
	msgDeleteLongRaw string
	MsgDeleteLong    = strings.TrimSpace(msgDeleteLongRaw)

	//go:embed msgs/delete-example.txt
	msgDeleteExampleRaw string
	MsgDeleteExample    = strings.TrimRight(msgDeleteExampleRaw, "\n")

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
