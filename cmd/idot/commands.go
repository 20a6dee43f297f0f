package idot

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/idot/internal/version"
	"github.com/arthur-debert/idot/pkg/cobrax/topics"
	"github.com/arthur-debert/idot/pkg/commands"
	"github.com/arthur-debert/idot/pkg/config"
	"github.com/arthur-debert/idot/pkg/logging"
	"github.com/arthur-debert/idot/pkg/types"
	"github.com/arthur-debert/idot/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		simulate  bool
		format    string
	)

	rootCmd := &cobra.Command{
		Use:     "idot [command] [workspace]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		// Without a command, report status
		RunE:              runStatus,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVarP(&simulate, "simulate", "s", false, MsgFlagSimulate)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if sub, err := fs.Sub(topicsFS, "topics"); err == nil {
		opts := topics.Options{
			Extensions: []string{".txt", ".md"},
			Renderer:   topics.NewGlamourRenderer(),
		}
		if err := topics.InitializeWithOptions(rootCmd, sub, opts); err != nil {
			log.Debug().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd
}

// workspaceArg returns the workspace positional argument, "." by default
func workspaceArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// newRenderer builds the renderer selected by the global --format flag
func newRenderer(cmd *cobra.Command) (ui.Renderer, error) {
	name, _ := cmd.Root().PersistentFlags().GetString("format")
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

func simulateFlag(cmd *cobra.Command) bool {
	simulate, _ := cmd.Root().PersistentFlags().GetBool("simulate")
	return simulate
}

func render(cmd *cobra.Command, result interface{}) error {
	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

func runStatus(cmd *cobra.Command, args []string) error {
	result, err := commands.Status(commands.StatusOptions{
		Workspace: workspaceArg(args),
	})
	if err != nil {
		return fmt.Errorf(MsgErrStatus, err)
	}
	return render(cmd, result)
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status [workspace]",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runStatus,
	}
}

func newCreateCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "create [workspace]",
		Short:   MsgCreateShort,
		Long:    MsgCreateLong,
		Example: MsgCreateExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			simulate := simulateFlag(cmd)
			log.Debug().
				Str("workspace", workspaceArg(args)).
				Bool("force", force).
				Bool("simulate", simulate).
				Msg("Creating links")

			result, err := commands.Create(commands.CreateOptions{
				Workspace: workspaceArg(args),
				Force:     force,
				Simulate:  simulate,
			})
			if err != nil {
				return fmt.Errorf(MsgErrCreate, err)
			}
			return render(cmd, result)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [workspace]",
		Short:   MsgDeleteShort,
		Long:    MsgDeleteLong,
		Example: MsgDeleteExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Delete(commands.DeleteOptions{
				Workspace: workspaceArg(args),
				Simulate:  simulateFlag(cmd),
			})
			if err != nil {
				return fmt.Errorf(MsgErrDelete, err)
			}
			return render(cmd, result)
		},
	}
}

func newInitCmd() *cobra.Command {
	var (
		configFormat string
		write        bool
	)

	cmd := &cobra.Command{
		Use:     "init [workspace]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := config.ParseFormat(configFormat)
			if err != nil {
				return err
			}

			result, err := commands.Init(commands.InitOptions{
				Workspace: workspaceArg(args),
				Format:    format,
				Write:     write,
			})
			if err != nil {
				return fmt.Errorf(MsgErrInit, err)
			}
			return render(cmd, result)
		},
	}

	cmd.Flags().StringVar(&configFormat, "config-format", string(config.FormatTOML), MsgFlagConfigFormat)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd, &types.VersionResult{
				Version:   version.Version,
				Commit:    version.Commit,
				BuildDate: version.Date,
			})
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
