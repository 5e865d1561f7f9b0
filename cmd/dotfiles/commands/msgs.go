package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Install and maintain a dotfiles checkout"
	MsgInstallShort     = "Set up the shell hook, symlinks and tools"
	MsgHookShort        = "Print the shell code that loads the dotfiles"
	MsgToolsShort       = "Manage command-line tools"
	MsgToolsListShort   = "Show which tools are installed"
	MsgToolsInstShort   = "Install missing tools"
	MsgConfigShort      = "Inspect the dotfiles configuration"
	MsgConfigShowShort  = "Print the effective configuration as TOML"
	MsgConfigInitShort  = "Write a commented dotfiles.toml into the checkout"
	MsgVersionShort     = "Print version information"
	MsgConfigInitLong   = "Write dotfiles.toml with every default commented out into the root of the dotfiles checkout."
	MsgConfigShowLong   = "Print the configuration after defaults, the config file and environment overrides are merged."
	MsgToolsListLong    = "List every tool with whether its binary is on PATH."
	MsgToolsInstallLong = "Install every tool whose binary is not on PATH. By default the first failure stops the batch."

	// Status messages
	MsgDryRunNotice      = "Dry run: no changes were made"
	MsgInstallComplete   = "Dotfiles installed"
	MsgHeadingHook       = "Shell hook"
	MsgHeadingHome       = "Home"
	MsgHeadingNested     = "Nested config"
	MsgHeadingTools      = "Tools"
	MsgSkippedEntry      = "Skipped %s: %v"
	MsgNoNestedTree      = "no nested config tree"
	MsgToolInstalled     = "Installed"
	MsgToolNotInstalled  = "Not Installed"
	MsgConfigWritten     = "Wrote %s"
	MsgConfigSourceLine  = "# loaded from %s\n"
	MsgVersionFormat     = "dotfiles version %s\n  commit: %s\n  built:  %s\n"
	MsgBackupDetail      = "backed up to %s"
	MsgWouldBackupDetail = "would back up to %s"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrUnknownFormat = "unknown format %q (want text, json or yaml)"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview changes without executing them"
	MsgFlagNoColor   = "Disable coloured output"
	MsgFlagNoTools   = "Skip tool installation"
	MsgFlagKeepGoing = "Keep installing tools after a failure"
	MsgFlagShell     = "Shell to generate the hook for (zsh or bash)"
	MsgFlagFormat    = "Output format: text, json or yaml"
	MsgFlagForce     = "Overwrite an existing dotfiles.toml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/hook-long.txt
	msgHookLongRaw string
	MsgHookLong    = strings.TrimSpace(msgHookLongRaw)

	//go:embed msgs/hook-example.txt
	msgHookExampleRaw string
	MsgHookExample    = strings.TrimRight(msgHookExampleRaw, "\n")

	//go:embed msgs/tools-long.txt
	msgToolsLongRaw string
	MsgToolsLong    = strings.TrimSpace(msgToolsLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
