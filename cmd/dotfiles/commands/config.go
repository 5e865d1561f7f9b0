package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotfiles/pkg/config"
	"github.com/arthur-debert/dotfiles/pkg/paths"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Long:  MsgConfigShowLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := paths.NewResolver().DotfilesDir()
			if err != nil {
				return err
			}

			loaded, err := config.Load(dir)
			if err != nil {
				return err
			}

			data, err := config.Marshal(loaded.Config)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if loaded.Path != "" {
				fmt.Fprintf(out, MsgConfigSourceLine, loaded.Path)
			}
			_, err = out.Write(data)
			return err
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Long:  MsgConfigInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := paths.NewResolver().DotfilesDir()
			if err != nil {
				return err
			}

			path, err := config.WriteDefault(dir, force)
			if err != nil {
				return err
			}

			newPrinter(cmd).Success(MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}
