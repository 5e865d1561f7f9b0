// Package hook generates the lines a shell evaluates at startup to load the
// dotfiles.
package hook

import (
	"fmt"

	"github.com/arthur-debert/dotfiles/pkg/paths"
	"github.com/arthur-debert/dotfiles/pkg/shell"
)

// ScriptPath is the script sourced from the dotfiles checkout
const ScriptPath = "shell/hook.sh"

// Snippet returns the export and source lines for shellName. The shell is
// validated before anything is produced.
func Snippet(shellName string, resolver *paths.Resolver) (string, error) {
	if _, err := shell.Parse(shellName); err != nil {
		return "", err
	}

	dir := resolver.HookDotfilesDir()
	return fmt.Sprintf("export DOTFILES_DIR=\"%s\"\nsource \"$DOTFILES_DIR/%s\"\n", dir, ScriptPath), nil
}
