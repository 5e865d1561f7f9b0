// pkg/commands/install/install_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: testutil, config, shell, symlink, tools
// PURPOSE: Test the full install flow against an isolated home directory

package install_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/dotfiles/pkg/commands/install"
	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/paths"
	"github.com/arthur-debert/dotfiles/pkg/shell"
	"github.com/arthur-debert/dotfiles/pkg/symlink"
	"github.com/arthur-debert/dotfiles/pkg/testutil"
	"github.com/arthur-debert/dotfiles/pkg/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Unix(1700000000, 0)

// pathRunner reports every name in onPath as installed and records runs
type pathRunner struct {
	onPath map[string]bool
	runs   []string
}

func newPathRunner(names ...string) *pathRunner {
	r := &pathRunner{onPath: map[string]bool{}}
	for _, n := range names {
		r.onPath[n] = true
	}
	return r
}

func (r *pathRunner) LookPath(name string) (string, error) {
	if r.onPath[name] {
		return "/usr/local/bin/" + name, nil
	}
	return "", fmt.Errorf("%s: not found", name)
}

func (r *pathRunner) Run(name string, args ...string) ([]byte, []byte, error) {
	r.runs = append(r.runs, name+" "+strings.Join(args, " "))
	return nil, nil, nil
}

func setupDotfiles(env *testutil.TestEnvironment) {
	env.WriteDotfile("home/.gitconfig", "[user]\n")
	env.WriteDotfile("home/.vimrc", "set nu\n")
	env.WriteDotfile("home/.config/nvim/init.lua", "-- nvim\n")
	env.WriteDotfile("home/.config/starship.toml", "add_newline = false\n")
}

func options(env *testutil.TestEnvironment, runner tools.Runner) install.Options {
	return install.Options{
		Resolver: env.Resolver(),
		FS:       env.FS,
		Runner:   runner,
		Now:      func() time.Time { return fixedNow },
	}
}

func assertLink(t *testing.T, target, expected string) {
	t.Helper()
	dest, err := os.Readlink(target)
	require.NoError(t, err, "%s should be a symlink", target)
	assert.Equal(t, expected, dest)
}

func TestRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t, "/bin/zsh")
	setupDotfiles(env)
	env.WriteHomeFile(".vimrc", "local vimrc\n")
	env.WriteHomeFile(".zshrc", "alias ll='ls -la'\n")

	runner := newPathRunner("eza", "rg", "fd", "nvim")
	result, err := install.Run(options(env, runner))
	require.NoError(t, err)

	assert.Equal(t, env.DotfilesDir, result.DotfilesDir)
	assert.Empty(t, result.ConfigPath)
	assert.Equal(t, shell.Zsh, result.Shell)
	assert.Equal(t, filepath.Join(env.HomeDir, ".zshrc"), result.StartupFile)
	assert.Equal(t, shell.Inserted, result.Hook)
	assert.Equal(t,
		"eval \"$(dotfiles hook --shell zsh)\"\n\nalias ll='ls -la'\n",
		env.ReadHomeFile(".zshrc"))

	source := filepath.Join(env.DotfilesDir, "home")
	assertLink(t, filepath.Join(env.HomeDir, ".gitconfig"), filepath.Join(source, ".gitconfig"))
	assertLink(t, filepath.Join(env.HomeDir, ".vimrc"), filepath.Join(source, ".vimrc"))
	assert.Equal(t, 1, result.Home.Count(symlink.BackedUpAndLinked))
	assert.Equal(t, "local vimrc\n", env.ReadHomeFile(".vimrc.backup.1700000000"))

	// .config is a real directory whose children are links
	info, err := os.Lstat(filepath.Join(env.HomeDir, ".config"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	require.NotNil(t, result.Nested)
	assert.Equal(t, 2, result.Nested.Count(symlink.Created))
	assertLink(t, filepath.Join(env.HomeDir, ".config", "nvim"), filepath.Join(source, ".config", "nvim"))
	assertLink(t, filepath.Join(env.HomeDir, ".config", "starship.toml"), filepath.Join(source, ".config", "starship.toml"))

	require.Len(t, result.Tools, 4)
	for _, res := range result.Tools {
		assert.Equal(t, tools.AlreadyInstalled, res.Outcome)
	}
	assert.Empty(t, runner.runs)
}

func TestRun_Idempotent(t *testing.T) {
	env := testutil.NewTestEnvironment(t, "/usr/bin/bash")
	setupDotfiles(env)

	opts := options(env, nil)
	opts.NoTools = true

	_, err := install.Run(opts)
	require.NoError(t, err)
	first := env.ReadHomeFile(".bashrc")

	result, err := install.Run(opts)
	require.NoError(t, err)

	assert.Equal(t, shell.AlreadyPresent, result.Hook)
	assert.Equal(t, first, env.ReadHomeFile(".bashrc"))
	assert.Equal(t, 1, strings.Count(first, shell.HookMarker))
	assert.Equal(t, len(result.Home.Results), result.Home.Count(symlink.AlreadyLinked))
	assert.Equal(t, len(result.Nested.Results), result.Nested.Count(symlink.AlreadyLinked))
	assert.Nil(t, result.Tools)

	matches, err := filepath.Glob(filepath.Join(env.HomeDir, "*.backup.*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRun_BashProfileFallback(t *testing.T) {
	env := testutil.NewTestEnvironment(t, "/bin/bash")
	setupDotfiles(env)
	env.WriteHomeFile(".profile", "export EDITOR=nvim\n")

	opts := options(env, nil)
	opts.NoTools = true
	result, err := install.Run(opts)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(env.HomeDir, ".profile"), result.StartupFile)
	assert.True(t, strings.HasPrefix(env.ReadHomeFile(".profile"), shell.HookLine(shell.Bash)))
	_, err = os.Stat(filepath.Join(env.HomeDir, ".bashrc"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_MissingDotfilesDir(t *testing.T) {
	env := testutil.NewTestEnvironment(t, "/bin/zsh")
	missing := filepath.Join(env.Root, "not-cloned")

	opts := options(env, nil)
	opts.Resolver = paths.NewResolverFromMap(map[string]string{
		"HOME":         env.HomeDir,
		"SHELL":        "/bin/zsh",
		"DOTFILES_DIR": missing,
	})

	_, err := install.Run(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathNotFound))
	assert.Contains(t, err.Error(), "clone the repository first")

	_, statErr := os.Stat(filepath.Join(env.HomeDir, ".zshrc"))
	assert.True(t, os.IsNotExist(statErr), "nothing is written before the checkout exists")
}

func TestRun_MissingHome(t *testing.T) {
	opts := install.Options{
		Resolver: paths.NewResolverFromMap(map[string]string{"SHELL": "/bin/zsh"}),
	}
	_, err := install.Run(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingEnvironment))
	assert.Equal(t, "HOME", errors.GetErrorDetails(err)[errors.DetailVariable])
}

func TestRun_UnsupportedShell(t *testing.T) {
	env := testutil.NewTestEnvironment(t, "/usr/bin/fish")
	setupDotfiles(env)

	opts := options(env, nil)
	opts.Resolver = paths.NewResolverFromMap(map[string]string{
		"HOME":         env.HomeDir,
		"SHELL":        "/usr/bin/fish",
		"DOTFILES_DIR": env.DotfilesDir,
	})

	_, err := install.Run(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedShell))

	entries, err := os.ReadDir(env.HomeDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no links or startup files are created")
}

func TestRun_DryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t, "/bin/zsh")
	setupDotfiles(env)
	env.WriteHomeFile(".vimrc", "local\n")

	runner := newPathRunner("cargo", "brew")
	opts := options(env, runner)
	opts.DryRun = true

	result, err := install.Run(opts)
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, shell.Inserted, result.Hook)
	assert.Equal(t, 1, result.Home.Count(symlink.BackedUpAndLinked))
	assert.Equal(t, 1, result.Home.Count(symlink.Created))
	require.NotNil(t, result.Nested)
	assert.Equal(t, 2, result.Nested.Count(symlink.Created))
	assert.Nil(t, result.Tools)
	assert.Empty(t, runner.runs)

	entries, err := os.ReadDir(env.HomeDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".vimrc", entries[0].Name())
	assert.Equal(t, "local\n", env.ReadHomeFile(".vimrc"))
}

func TestRun_NoNestedTree(t *testing.T) {
	env := testutil.NewTestEnvironment(t, "/bin/zsh")
	env.WriteDotfile("home/.gitconfig", "[user]\n")

	opts := options(env, nil)
	opts.NoTools = true
	result, err := install.Run(opts)
	require.NoError(t, err)

	assert.Nil(t, result.Nested)
	assert.True(t, result.NestedSkipped)
	_, err = os.Lstat(filepath.Join(env.HomeDir, ".config"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_ConfigFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, "/bin/zsh")
	env.WriteDotfile("files/.gitconfig", "[user]\n")
	env.WriteDotfile("files/README.md", "# notes\n")
	env.WriteDotfile("dotfiles.toml", "[link]\nsource = \"files\"\nexclude = [\"README.md\"]\n\n[tools]\nskip = [\"nvim\"]\n")

	runner := newPathRunner("cargo", "brew", "eza", "rg", "fd")
	result, err := install.Run(options(env, runner))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(env.DotfilesDir, "dotfiles.toml"), result.ConfigPath)
	assertLink(t, filepath.Join(env.HomeDir, ".gitconfig"), filepath.Join(env.DotfilesDir, "files", ".gitconfig"))
	_, err = os.Lstat(filepath.Join(env.HomeDir, "README.md"))
	assert.True(t, os.IsNotExist(err))

	require.Len(t, result.Tools, 4)
	assert.Equal(t, tools.Skipped, result.Tools[3].Outcome)
	assert.Empty(t, runner.runs)
}

func TestRun_ToolFailureKeepsLinks(t *testing.T) {
	env := testutil.NewTestEnvironment(t, "/bin/zsh")
	setupDotfiles(env)

	// No package manager on PATH
	runner := newPathRunner()
	result, err := install.Run(options(env, runner))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrToolUnavailable))

	require.Len(t, result.Tools, 1)
	assert.Equal(t, tools.Failed, result.Tools[0].Outcome)
	assertLink(t, filepath.Join(env.HomeDir, ".gitconfig"), filepath.Join(env.DotfilesDir, "home", ".gitconfig"))
}

func TestRun_ToolKeepGoing(t *testing.T) {
	env := testutil.NewTestEnvironment(t, "/bin/zsh")
	setupDotfiles(env)

	runner := newPathRunner("cargo")
	opts := options(env, runner)
	opts.KeepGoing = true

	result, err := install.Run(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrToolUnavailable))

	require.Len(t, result.Tools, 4)
	assert.Equal(t, []string{"cargo install eza", "cargo install ripgrep", "cargo install fd-find"}, runner.runs)
	assert.Equal(t, tools.Failed, result.Tools[3].Outcome)
}

func TestRun_DanglingStartupLinkFallsBack(t *testing.T) {
	env := testutil.NewTestEnvironment(t, "/bin/bash")
	env.WriteDotfile("home/.gitconfig", "[user]\n")
	env.WriteHomeFile(".profile", "export A=1\n")
	bashrc := filepath.Join(env.HomeDir, ".bashrc")
	require.NoError(t, os.Symlink(filepath.Join(env.Root, "gone"), bashrc))

	opts := options(env, nil)
	opts.NoTools = true
	result, err := install.Run(opts)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(env.HomeDir, ".profile"), result.StartupFile)
	assert.Equal(t, "eval \"$(dotfiles hook --shell bash)\"\n\nexport A=1\n", env.ReadHomeFile(".profile"))

	info, err := os.Lstat(bashrc)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}
