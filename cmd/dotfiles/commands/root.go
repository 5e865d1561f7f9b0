// Package commands builds the dotfiles command tree.
package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotfiles/internal/version"
	"github.com/arthur-debert/dotfiles/pkg/logging"
	"github.com/arthur-debert/dotfiles/pkg/style"
	"github.com/arthur-debert/dotfiles/pkg/tools"
)

// Persistent flag names read by subcommands
const (
	flagDryRun  = "dry-run"
	flagNoColor = "no-color"
)

// newToolRunner creates the runner used for package managers
var newToolRunner = func(logger zerolog.Logger) tools.Runner {
	return tools.NewExecRunner(logger)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity int
		dryRun    bool
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:     "dotfiles",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, flagDryRun, false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&noColor, flagNoColor, false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.SetCompletionCommandGroupID("misc")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newHookCmd())
	rootCmd.AddCommand(newToolsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// PrintError writes err as a single severity-tagged line on the command's
// error stream.
func PrintError(cmd *cobra.Command, err error) {
	noColor, _ := cmd.Root().PersistentFlags().GetBool(flagNoColor)
	style.NewPrinter(cmd.ErrOrStderr(), cmd.ErrOrStderr(), noColor).Error(err)
}

func newPrinter(cmd *cobra.Command) *style.Printer {
	noColor, _ := cmd.Root().PersistentFlags().GetBool(flagNoColor)
	return style.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), noColor)
}

func isDryRun(cmd *cobra.Command) bool {
	dryRun, _ := cmd.Root().PersistentFlags().GetBool(flagDryRun)
	return dryRun
}
