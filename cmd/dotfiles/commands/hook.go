package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotfiles/pkg/commands/hook"
	"github.com/arthur-debert/dotfiles/pkg/paths"
)

func newHookCmd() *cobra.Command {
	var shellName string

	cmd := &cobra.Command{
		Use:     "hook --shell <zsh|bash>",
		Short:   MsgHookShort,
		Long:    MsgHookLong,
		Example: MsgHookExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snippet, err := hook.Snippet(shellName, paths.NewResolver())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), snippet)
			return err
		},
	}

	cmd.Flags().StringVarP(&shellName, "shell", "s", "", MsgFlagShell)
	_ = cmd.MarkFlagRequired("shell")
	_ = cmd.RegisterFlagCompletionFunc("shell", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"zsh", "bash"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
