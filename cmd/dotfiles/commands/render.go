package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotfiles/pkg/commands/install"
	"github.com/arthur-debert/dotfiles/pkg/shell"
	"github.com/arthur-debert/dotfiles/pkg/style"
	"github.com/arthur-debert/dotfiles/pkg/symlink"
	"github.com/arthur-debert/dotfiles/pkg/tools"
)

// renderInstall prints whatever part of an install completed
func renderInstall(p *style.Printer, result *install.Result) {
	if result == nil || result.StartupFile == "" {
		return
	}
	home := result.HomeDir

	p.Heading(MsgHeadingHook)
	kind := style.KindChanged
	if result.Hook == shell.AlreadyPresent {
		kind = style.KindUnchanged
	}
	p.Item(kind, tildify(result.StartupFile, home), result.Hook.String())

	if result.Home != nil {
		p.Heading(MsgHeadingHome)
		renderTree(p, result.Home, home, result.DryRun)
	}
	if result.Nested != nil {
		p.Heading(MsgHeadingNested)
		renderTree(p, result.Nested, home, result.DryRun)
	} else if result.NestedSkipped {
		p.Info(MsgNoNestedTree)
	}

	if len(result.Tools) > 0 {
		p.Heading(MsgHeadingTools)
		for _, res := range result.Tools {
			renderToolResult(p, res)
		}
	}
}

func renderTree(p *style.Printer, tree *symlink.TreeResult, home string, dryRun bool) {
	for _, res := range tree.Results {
		kind := style.KindChanged
		detail := res.Outcome.String()
		switch res.Outcome {
		case symlink.AlreadyLinked:
			kind = style.KindUnchanged
		case symlink.BackedUpAndLinked:
			kind = style.KindWarning
			format := MsgBackupDetail
			if dryRun {
				format = MsgWouldBackupDetail
			}
			detail = fmt.Sprintf(format, tildify(res.BackupPath, home))
		}
		p.Item(kind, tildify(res.Target.Target, home), detail)
	}
	for _, skipped := range tree.Skipped {
		p.Warning(MsgSkippedEntry, skipped.Name, skipped.Err)
	}
}

func renderToolResult(p *style.Printer, res tools.InstallResult) {
	switch res.Outcome {
	case tools.Installed:
		p.Item(style.KindChanged, res.Tool.Name, res.Outcome.String())
	case tools.Failed:
		p.Item(style.KindFailed, res.Tool.Name, res.Outcome.String())
		if res.Tool.FailureHint != "" {
			p.Warning("%s", res.Tool.FailureHint)
		}
	default:
		p.Item(style.KindUnchanged, res.Tool.Name, res.Outcome.String())
	}
}

// tildify shortens paths under home to ~/...
func tildify(path, home string) string {
	if home == "" || home == "/" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}
