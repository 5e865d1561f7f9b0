// Package install runs the full dotfiles installation: shell hook, home
// symlinks, nested config symlinks and the tool batch.
package install

import (
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/dotfiles/pkg/config"
	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/logging"
	"github.com/arthur-debert/dotfiles/pkg/paths"
	"github.com/arthur-debert/dotfiles/pkg/shell"
	"github.com/arthur-debert/dotfiles/pkg/symlink"
	"github.com/arthur-debert/dotfiles/pkg/tools"
	"github.com/arthur-debert/dotfiles/pkg/types"
)

// Options defines the options for Run.
type Options struct {
	// Resolver reads HOME, SHELL and DOTFILES_DIR.
	Resolver *paths.Resolver
	// FS performs every filesystem change.
	FS types.FS
	// Runner finds and runs package managers; defaults to an os/exec runner.
	Runner tools.Runner
	// Now stamps backup names; defaults to time.Now.
	Now func() time.Time
	// DryRun computes every outcome without writing.
	DryRun bool
	// NoTools skips the tool batch.
	NoTools bool
	// KeepGoing continues the tool batch past failures. It is combined
	// with tools.keep_going from the configuration.
	KeepGoing bool
}

// Result describes everything an install did, or would do in a dry run.
type Result struct {
	DotfilesDir string
	HomeDir     string
	ConfigPath  string
	Shell       shell.Variant
	// StartupFile is set once the hook step has succeeded
	StartupFile string
	Hook        shell.HookOutcome
	Home        *symlink.TreeResult
	// Nested is nil when the nested pass did not run
	Nested *symlink.TreeResult
	// NestedSkipped is set when the nested source tree does not exist
	NestedSkipped bool
	Tools  []tools.InstallResult
	DryRun bool
}

// Run installs the dotfiles. On failure the returned Result holds whatever
// completed before the error.
func Run(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.install")
	done := logging.LogOperationStart(log, "install")
	defer done()

	result := &Result{DryRun: opts.DryRun}

	dotfilesDir, err := opts.Resolver.DotfilesDir()
	if err != nil {
		return result, err
	}
	if err := requireDir(opts.FS, dotfilesDir); err != nil {
		return result, err
	}
	result.DotfilesDir = dotfilesDir

	cfg, err := config.Load(dotfilesDir)
	if err != nil {
		return result, err
	}
	result.ConfigPath = cfg.Path
	log.Debug().Str("dotfiles_dir", dotfilesDir).Str("config", cfg.Path).Bool("dry_run", opts.DryRun).Msg("Configuration loaded")

	home, err := opts.Resolver.HomeDir()
	if err != nil {
		return result, err
	}
	result.HomeDir = home
	shellPath, err := opts.Resolver.LoginShell()
	if err != nil {
		return result, err
	}
	variant, err := shell.Detect(shellPath)
	if err != nil {
		return result, err
	}
	result.Shell = variant
	startupFile := shell.ConfigPath(opts.FS, home, variant)

	installer := shell.NewHookInstaller(opts.FS, logging.GetLogger("shell.hook"), shell.HookOptions{
		AtomicWrite: cfg.Hook.AtomicWrite,
		DryRun:      opts.DryRun,
	})
	result.Hook, err = installer.Ensure(startupFile, variant)
	if err != nil {
		return result, err
	}
	result.StartupFile = startupFile

	reconciler := symlink.New(opts.FS, logging.GetLogger("symlink"), symlink.Options{
		Now:    opts.Now,
		DryRun: opts.DryRun,
	})

	sourceDir := filepath.Join(dotfilesDir, cfg.Link.Source)
	// The nested subtree is excluded here and linked entry by entry below
	result.Home, err = reconciler.ReconcileTree(sourceDir, home, cfg.HomeExcludes())
	if err != nil {
		return result, err
	}

	if cfg.Link.Nested != "" {
		result.Nested, err = reconcileNested(opts, reconciler, sourceDir, home, cfg)
		if err != nil {
			return result, err
		}
		result.NestedSkipped = result.Nested == nil
	}

	if opts.NoTools {
		log.Info().Msg("Skipping tool installation")
		return result, nil
	}
	if opts.DryRun {
		log.Info().Msg("Dry run: tool installation not attempted")
		return result, nil
	}

	runner := opts.Runner
	if runner == nil {
		runner = tools.NewExecRunner(logging.GetLogger("tools.exec"))
	}
	registry := tools.NewRegistry(runner, logging.GetLogger("tools"), nil)
	result.Tools, err = registry.InstallMissing(tools.InstallOptions{
		KeepGoing: opts.KeepGoing || cfg.Tools.KeepGoing,
		Skip:      cfg.SkipsTool,
	})
	if err != nil {
		return result, err
	}

	log.Info().Str("command", "Install").Msg("Command finished")
	return result, nil
}

func reconcileNested(opts Options, reconciler *symlink.Reconciler, sourceDir, home string, cfg *config.Loaded) (*symlink.TreeResult, error) {
	log := logging.GetLogger("commands.install")

	nestedSource := filepath.Join(sourceDir, cfg.Link.Nested)
	if _, err := opts.FS.Stat(nestedSource); err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", nestedSource).Msg("No nested config tree, skipping")
			return nil, nil
		}
		return nil, errors.IoFailure(nestedSource, err)
	}

	nestedTarget := filepath.Join(home, cfg.Link.Nested)
	if !opts.DryRun {
		if err := opts.FS.MkdirAll(nestedTarget, 0755); err != nil {
			return nil, errors.IoFailure(nestedTarget, err)
		}
	}

	return reconciler.ReconcileTree(nestedSource, nestedTarget, nil)
}

func requireDir(fs types.FS, dir string) error {
	info, err := fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.PathNotFound(dir, "dotfiles directory; clone the repository first")
		}
		return errors.IoFailure(dir, err)
	}
	if !info.IsDir() {
		return errors.PathNotFound(dir, "dotfiles directory; clone the repository first")
	}
	return nil
}
