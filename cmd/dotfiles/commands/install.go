package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotfiles/pkg/commands/install"
	"github.com/arthur-debert/dotfiles/pkg/filesystem"
	"github.com/arthur-debert/dotfiles/pkg/logging"
	"github.com/arthur-debert/dotfiles/pkg/paths"
)

func newInstallCmd() *cobra.Command {
	var (
		noTools   bool
		keepGoing bool
	)

	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun := isDryRun(cmd)
			log.Info().
				Bool("dry_run", dryRun).
				Bool("no_tools", noTools).
				Bool("keep_going", keepGoing).
				Msg("Starting install")

			result, err := install.Run(install.Options{
				Resolver:  paths.NewResolver(),
				FS:        filesystem.NewOS(),
				Runner:    newToolRunner(logging.GetLogger("tools.exec")),
				DryRun:    dryRun,
				NoTools:   noTools,
				KeepGoing: keepGoing,
			})

			p := newPrinter(cmd)
			renderInstall(p, result)
			if err != nil {
				return err
			}

			if dryRun {
				p.Info(MsgDryRunNotice)
			} else {
				p.Success(MsgInstallComplete)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noTools, "no-tools", false, MsgFlagNoTools)
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, MsgFlagKeepGoing)

	return cmd
}
