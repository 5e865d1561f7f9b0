package main

import (
	"os"

	"github.com/arthur-debert/dotfiles/cmd/dotfiles/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		commands.PrintError(rootCmd, err)
		os.Exit(1)
	}
}
