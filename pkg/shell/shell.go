package shell

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/types"
)

// Variant is a supported shell
type Variant int

const (
	Zsh Variant = iota
	Bash
)

// startupFiles lists each variant's candidate startup files, most
// preferred first. The first entry is the primary one.
var startupFiles = map[Variant][]string{
	Zsh:  {".zshrc"},
	Bash: {".bashrc", ".bash_profile", ".profile"},
}

// Name returns the canonical shell name
func (v Variant) Name() string {
	switch v {
	case Zsh:
		return "zsh"
	case Bash:
		return "bash"
	default:
		return "unknown"
	}
}

func (v Variant) String() string {
	return v.Name()
}

// StartupFiles returns the candidate startup file names in preference order
func (v Variant) StartupFiles() []string {
	files := startupFiles[v]
	out := make([]string, len(files))
	copy(out, files)
	return out
}

// Detect maps a login shell path such as /bin/zsh or
// /opt/homebrew/bin/bash to a Variant by substring.
func Detect(shellPath string) (Variant, error) {
	switch {
	case strings.Contains(shellPath, "zsh"):
		return Zsh, nil
	case strings.Contains(shellPath, "bash"):
		return Bash, nil
	default:
		return 0, errors.UnsupportedShell(shellPath)
	}
}

// Parse accepts exactly "zsh" or "bash"
func Parse(name string) (Variant, error) {
	switch name {
	case "zsh":
		return Zsh, nil
	case "bash":
		return Bash, nil
	default:
		return 0, errors.UnsupportedShell(name)
	}
}

// ConfigPath returns the first existing startup file for v under home, or
// the primary one when none exists. Symlinks are followed, so a dangling
// link does not count as existing. Nothing is created.
func ConfigPath(fs types.FS, home string, v Variant) string {
	candidates := startupFiles[v]
	for _, name := range candidates {
		path := filepath.Join(home, name)
		if _, err := fs.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(home, candidates[0])
}
