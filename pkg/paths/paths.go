// Package paths resolves the environment-derived locations dotfiles works
// with: the home directory, the login shell and the dotfiles checkout.
package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotfiles/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvShell holds the path of the user's login shell
	EnvShell = "SHELL"

	// EnvDotfilesDir overrides the location of the dotfiles checkout
	EnvDotfilesDir = "DOTFILES_DIR"
)

// Default locations, relative to the home directory
const (
	// ConfigDirName is the XDG-style config directory under home
	ConfigDirName = ".config"

	// DefaultDotfilesDirName is the checkout directory name under ConfigDirName
	DefaultDotfilesDirName = "dotfiles"

	// FallbackDotfilesDir is printed by the hook when no home is known;
	// the shell expands the tilde.
	FallbackDotfilesDir = "~/.config/dotfiles"
)

// lookupFunc has the signature of os.LookupEnv
type lookupFunc func(key string) (string, bool)

// Resolver reads environment variables through a lookup function.
// It has no side effects.
type Resolver struct {
	lookup lookupFunc
}

// NewResolver creates a Resolver backed by the process environment
func NewResolver() *Resolver {
	return &Resolver{lookup: os.LookupEnv}
}

// NewResolverFromMap creates a Resolver over a fixed set of variables
func NewResolverFromMap(env map[string]string) *Resolver {
	return &Resolver{lookup: func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}}
}

// Resolve returns the value of name, or a MissingEnvironment error when the
// variable is unset or empty.
func (r *Resolver) Resolve(name string) (string, error) {
	value, ok := r.lookup(name)
	if !ok || value == "" {
		return "", errors.MissingEnvironment(name)
	}
	return value, nil
}

// HomeDir returns $HOME
func (r *Resolver) HomeDir() (string, error) {
	return r.Resolve(EnvHome)
}

// LoginShell returns $SHELL
func (r *Resolver) LoginShell() (string, error) {
	return r.Resolve(EnvShell)
}

// DotfilesDir returns $DOTFILES_DIR when set, otherwise
// $HOME/.config/dotfiles. It fails only when neither is available.
func (r *Resolver) DotfilesDir() (string, error) {
	if dir, err := r.Resolve(EnvDotfilesDir); err == nil {
		return dir, nil
	}

	home, err := r.HomeDir()
	if err != nil {
		return "", err
	}
	return DefaultDotfilesDir(home), nil
}

// HookDotfilesDir is DotfilesDir for the hook output: it never fails and
// falls back to the literal ~/.config/dotfiles.
func (r *Resolver) HookDotfilesDir() string {
	dir, err := r.DotfilesDir()
	if err != nil {
		return FallbackDotfilesDir
	}
	return dir
}

// DefaultDotfilesDir returns the checkout location for a home directory
func DefaultDotfilesDir(home string) string {
	return filepath.Join(home, ConfigDirName, DefaultDotfilesDirName)
}
