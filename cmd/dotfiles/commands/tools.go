package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/dotfiles/pkg/config"
	"github.com/arthur-debert/dotfiles/pkg/logging"
	"github.com/arthur-debert/dotfiles/pkg/paths"
	"github.com/arthur-debert/dotfiles/pkg/tools"
)

// List output formats
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func newToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tools",
		Short:   MsgToolsShort,
		Long:    MsgToolsLong,
		GroupID: "core",
	}

	cmd.AddCommand(newToolsListCmd())
	cmd.AddCommand(newToolsInstallCmd())

	return cmd
}

func newRegistry() *tools.Registry {
	return tools.NewRegistry(
		newToolRunner(logging.GetLogger("tools.exec")),
		logging.GetLogger("tools"),
		nil,
	)
}

func newToolsListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgToolsListShort,
		Long:  MsgToolsListLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeToolStatuses(cmd.OutOrStdout(), newRegistry().List(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{formatText, formatJSON, formatYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func writeToolStatuses(w io.Writer, statuses []tools.Status, format string) error {
	switch format {
	case formatText:
		for _, s := range statuses {
			state := MsgToolNotInstalled
			if s.Installed {
				state = MsgToolInstalled
			}
			if _, err := fmt.Fprintf(w, "%s: %s\n", s.Name, state); err != nil {
				return err
			}
		}
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(statuses); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf(MsgErrUnknownFormat, format)
	}
}

func newToolsInstallCmd() *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: MsgToolsInstShort,
		Long:  MsgToolsInstallLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := tools.InstallOptions{KeepGoing: keepGoing}

			// Config is optional here: tools can be installed before the
			// checkout exists.
			if dir, err := paths.NewResolver().DotfilesDir(); err == nil {
				loaded, err := config.Load(dir)
				if err != nil {
					return err
				}
				opts.KeepGoing = opts.KeepGoing || loaded.Tools.KeepGoing
				opts.Skip = loaded.SkipsTool
			}

			results, err := newRegistry().InstallMissing(opts)

			p := newPrinter(cmd)
			for _, res := range results {
				renderToolResult(p, res)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, MsgFlagKeepGoing)

	return cmd
}
